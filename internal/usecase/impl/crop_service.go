package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"
)

type cropService struct {
	cropRepo repository.CropRepository
	logger   *slog.Logger
}

// NewCropService creates a new crop catalog service.
func NewCropService(cropRepo repository.CropRepository, logger *slog.Logger) usecase.CropUsecase {
	return &cropService{cropRepo: cropRepo, logger: logger}
}

// CreateCrop title-cases the name and derives the slug when none is given.
// Name and slug collisions surface as ErrCropAlreadyExists from the store.
func (srv *cropService) CreateCrop(ctx context.Context, input *usecase.CreateCropInput) (*entity.Crop, error) {
	name := entity.NormalizeCropName(input.Name)

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = entity.Slugify(name)
	}

	crop := &entity.Crop{
		Name:        name,
		Category:    input.Category,
		Description: input.Description,
		Slug:        slug,
	}
	if err := crop.Validate(); err != nil {
		return nil, err
	}
	if err := srv.cropRepo.Create(ctx, crop); err != nil {
		return nil, errors.Wrap(err, "failed to create crop")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Crop created",
		slog.String("cropID", crop.ID.String()),
		slog.String("slug", crop.Slug))

	return crop, nil
}

func (srv *cropService) ListCrops(ctx context.Context) ([]*entity.Crop, error) {
	crops, err := srv.cropRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	return crops, nil
}

func (srv *cropService) GetCrop(ctx context.Context, slug string) (*entity.Crop, error) {
	crop, err := srv.cropRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get crop")
	}

	return crop, nil
}
