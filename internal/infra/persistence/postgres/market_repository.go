package postgres

import (
	"context"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// marketRepository implements repository.MarketRepository using GORM.
type marketRepository struct {
	db *gorm.DB
}

// NewMarketRepository is the constructor for marketRepository.
func NewMarketRepository(db *gorm.DB) repository.MarketRepository {
	return &marketRepository{db: db}
}

func (repo *marketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Market, error) {
	var marketM model.MarketModel
	err := repo.db.WithContext(ctx).
		Preload("MainCrops", orderCropsByName).
		Where("id = ?", id).
		First(&marketM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMarketNotFound
		}

		return nil, errors.Wrap(err, "failed to find market")
	}

	return toMarketDomain(&marketM), nil
}

func (repo *marketRepository) List(ctx context.Context, filter repository.MarketFilter) ([]*entity.Market, error) {
	query := repo.db.WithContext(ctx).Preload("MainCrops", orderCropsByName)

	if filter.CropSlug != "" {
		query = query.Where(
			"markets.id IN (?)",
			repo.db.Table("market_crops").
				Select("market_crops.market_id").
				Joins("JOIN crops ON crops.id = market_crops.crop_id").
				Where("crops.slug = ?", filter.CropSlug),
		)
	}
	if filter.BuyerID != uuid.Nil {
		query = query.Where("markets.buyer_id = ?", filter.BuyerID)
	}

	var marketsM []*model.MarketModel
	if err := query.Order("markets.created_at DESC").Find(&marketsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list markets")
	}

	markets := make([]*entity.Market, 0, len(marketsM))
	for _, m := range marketsM {
		markets = append(markets, toMarketDomain(m))
	}

	return markets, nil
}

func (repo *marketRepository) Create(ctx context.Context, market *entity.Market) error {
	if market.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate market id")
		}
		market.ID = id
	}

	marketM := fromMarketDomain(market)
	if err := repo.db.WithContext(ctx).Omit("MainCrops.*").Create(marketM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("market references an unknown crop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create market")
	}

	market.CreatedAt = marketM.CreatedAt

	return nil
}

func toMarketDomain(data *model.MarketModel) *entity.Market {
	market := &entity.Market{
		ID:             data.ID,
		BuyerID:        data.BuyerID,
		Name:           data.Name,
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		MainCrops:      toCropsDomain(data.MainCrops),
		GoogleMapsLink: data.GoogleMapsLink,
		CreatedAt:      data.CreatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		market.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return market
}

func fromMarketDomain(data *entity.Market) *model.MarketModel {
	marketM := &model.MarketModel{
		ID:             data.ID,
		BuyerID:        data.BuyerID,
		Name:           data.Name,
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		MainCrops:      fromCropsDomain(data.MainCrops),
		GoogleMapsLink: data.GoogleMapsLink,
		CreatedAt:      data.CreatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat(), data.Location.Lon()
		marketM.Latitude = &lat
		marketM.Longitude = &lng
	}

	return marketM
}
