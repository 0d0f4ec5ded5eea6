package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type marketService struct {
	txManager  repository.TransactionManager
	marketRepo repository.MarketRepository
	logger     *slog.Logger
}

// MarketServiceParams holds dependencies for MarketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MarketRepo repository.MarketRepository
	Logger     *slog.Logger
}

// NewMarketService creates a new market service.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		txManager:  params.TxManager,
		marketRepo: params.MarketRepo,
		logger:     params.Logger,
	}
}

// CreateMarket registers a market for a buyer. The stored role is checked,
// so a token minted before onboarding still works.
func (srv *marketService) CreateMarket(ctx context.Context, accountID uuid.UUID, input *usecase.CreateMarketInput) (*usecase.MarketView, error) {
	location, err := pointFrom(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	market := &entity.Market{
		BuyerID:      accountID,
		Name:         strings.TrimSpace(input.Name),
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Location:     location,
	}
	if err := market.Validate(); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		account, err := txRepoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account.Role != entity.RoleBuyer {
			return domainerrors.ErrForbidden.WithDetails("only buyers can register markets")
		}

		crops, err := resolveCrops(ctx, txRepoFactory, input.MainCropIDs)
		if err != nil {
			return err
		}
		market.MainCrops = crops

		return txRepoFactory.MarketRepo().Create(ctx, market)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create market")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Market registered",
		slog.String("marketID", market.ID.String()),
		slog.String("buyerID", accountID.String()))

	return newMarketView(market), nil
}

func (srv *marketService) ListMarkets(ctx context.Context, query *usecase.MarketQuery) ([]*usecase.MarketView, error) {
	markets, err := srv.marketRepo.List(ctx, repository.MarketFilter{CropSlug: query.CropSlug, BuyerID: query.BuyerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list markets")
	}

	views := make([]*usecase.MarketView, 0, len(markets))
	for _, m := range markets {
		views = append(views, newMarketView(m))
	}

	return views, nil
}

func (srv *marketService) GetMarket(ctx context.Context, id uuid.UUID) (*usecase.MarketView, error) {
	market, err := srv.marketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get market")
	}

	return newMarketView(market), nil
}

func newMarketView(m *entity.Market) *usecase.MarketView {
	view := &usecase.MarketView{Market: m}
	if m.MainCrops == nil {
		m.MainCrops = []*entity.Crop{}
	}
	if m.Location != nil {
		lat, lng := m.Location.Lat(), m.Location.Lon()
		view.Latitude = &lat
		view.Longitude = &lng
	}

	return view
}
