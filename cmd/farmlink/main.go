package main

import (
	"context"
	"log/slog"
	"os"

	"farmlink/config"
	"farmlink/internal/delivery"
	"farmlink/internal/delivery/http"
	"farmlink/internal/delivery/http/middleware"
	"farmlink/internal/delivery/http/router/handler"
	"farmlink/internal/infra/auth"
	logs "farmlink/internal/infra/log"
	"farmlink/internal/infra/persistence/postgres"
	"farmlink/internal/infra/pubsub"
	"farmlink/internal/infra/qrcode"
	"farmlink/internal/infra/storage"
	"farmlink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewFarmerProfileRepository,
			postgres.NewBuyerProfileRepository,
			postgres.NewCropRepository,
			postgres.NewProduceRepository,
			postgres.NewFeedbackRepository,
			postgres.NewMarketRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			storage.NewPhotoStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewCropService,
			impl.NewProduceService,
			impl.NewFeedbackService,
			impl.NewMarketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewCropHandler,
			handler.NewProduceHandler,
			handler.NewFeedbackHandler,
			handler.NewMarketHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
