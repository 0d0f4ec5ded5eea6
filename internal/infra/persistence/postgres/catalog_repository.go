package postgres

import (
	"context"
	"time"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cropRepository implements repository.CropRepository using GORM.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(db *gorm.DB) repository.CropRepository {
	return &cropRepository{db: db}
}

func (repo *cropRepository) FindBySlug(ctx context.Context, slug string) (*entity.Crop, error) {
	return repo.first(repo.db.WithContext(ctx).Where("slug = ?", slug))
}

func (repo *cropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *cropRepository) first(query *gorm.DB) (*entity.Crop, error) {
	var cropM model.CropModel
	if err := query.First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	return toCropDomain(&cropM), nil
}

func (repo *cropRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Crop, error) {
	if len(ids) == 0 {
		return []*entity.Crop{}, nil
	}

	var cropsM []*model.CropModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("name").Find(&cropsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find crops")
	}

	return toCropsDomain(cropsM), nil
}

func (repo *cropRepository) List(ctx context.Context) ([]*entity.Crop, error) {
	var cropsM []*model.CropModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&cropsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	return toCropsDomain(cropsM), nil
}

func (repo *cropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	if crop.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate crop id")
		}
		crop.ID = id
	}

	cropM := fromCropDomain(crop)
	if err := repo.db.WithContext(ctx).Create(cropM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCropAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crop")
	}

	crop.CreatedAt = cropM.CreatedAt

	return nil
}

// produceRepository implements repository.ProduceRepository using GORM.
type produceRepository struct {
	db *gorm.DB
}

// NewProduceRepository is the constructor for produceRepository.
func NewProduceRepository(db *gorm.DB) repository.ProduceRepository {
	return &produceRepository{db: db}
}

func (repo *produceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProduceListing, error) {
	var listingM model.ProduceListingModel
	err := repo.db.WithContext(ctx).Preload("Crop").Where("id = ?", id).First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find produce listing")
	}

	return toListingDomain(&listingM), nil
}

func (repo *produceRepository) ListAvailable(ctx context.Context, filter repository.ListingFilter) ([]*entity.ProduceListing, error) {
	query := repo.db.WithContext(ctx).
		Preload("Crop").
		Where("produce_listings.is_available = ?", true)

	if filter.CropSlug != "" {
		query = query.
			Joins("JOIN crops ON crops.id = produce_listings.crop_id").
			Where("crops.slug = ?", filter.CropSlug)
	}
	if filter.FarmerID != uuid.Nil {
		query = query.Where("produce_listings.farmer_id = ?", filter.FarmerID)
	}

	var listingsM []*model.ProduceListingModel
	if err := query.Order("produce_listings.listed_at DESC").Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list produce")
	}

	listings := make([]*entity.ProduceListing, 0, len(listingsM))
	for _, listingM := range listingsM {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

func (repo *produceRepository) Create(ctx context.Context, listing *entity.ProduceListing) error {
	if listing.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate listing id")
		}
		listing.ID = id
	}
	if listing.ListedAt.IsZero() {
		listing.ListedAt = time.Now().UTC()
	}

	listingM := fromListingDomain(listing)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("listing references an unknown crop or farmer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create produce listing")
	}

	return nil
}

func (repo *produceRepository) Update(ctx context.Context, listing *entity.ProduceListing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(listingM).
		Omit(clause.Associations, "ListedAt").
		Select("*").
		Updates(listingM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update produce listing")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrListingNotFound
	}

	return nil
}

// feedbackRepository implements repository.FeedbackRepository using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	if feedback.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate feedback id")
		}
		feedback.ID = id
	}

	feedbackM := &model.FeedbackModel{
		ID:                feedback.ID,
		ReviewerID:        feedback.ReviewerID,
		ReviewedAccountID: feedback.ReviewedAccountID,
		Rating:            feedback.Rating,
		Comment:           feedback.Comment,
		CreatedAt:         feedback.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

func (repo *feedbackRepository) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Feedback, error) {
	var feedbackM []*model.FeedbackModel
	err := repo.db.WithContext(ctx).
		Where("reviewed_account_id = ?", accountID).
		Order("created_at DESC").
		Find(&feedbackM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedback := make([]*entity.Feedback, 0, len(feedbackM))
	for _, f := range feedbackM {
		feedback = append(feedback, &entity.Feedback{
			ID:                f.ID,
			ReviewerID:        f.ReviewerID,
			ReviewedAccountID: f.ReviewedAccountID,
			Rating:            f.Rating,
			Comment:           f.Comment,
			CreatedAt:         f.CreatedAt,
		})
	}

	return feedback, nil
}

// --- Mapper Functions ---

func toCropDomain(data *model.CropModel) *entity.Crop {
	if data == nil {
		return nil
	}

	return &entity.Crop{
		ID:          data.ID,
		Name:        data.Name,
		Category:    entity.CropCategory(data.Category),
		Description: data.Description,
		Slug:        data.Slug,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCropDomain(data *entity.Crop) *model.CropModel {
	if data == nil {
		return nil
	}

	return &model.CropModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    string(data.Category),
		Description: data.Description,
		Slug:        data.Slug,
		CreatedAt:   data.CreatedAt,
	}
}

func toCropsDomain(data []*model.CropModel) []*entity.Crop {
	crops := make([]*entity.Crop, 0, len(data))
	for _, c := range data {
		crops = append(crops, toCropDomain(c))
	}

	return crops
}

func fromCropsDomain(data []*entity.Crop) []*model.CropModel {
	crops := make([]*model.CropModel, 0, len(data))
	for _, c := range data {
		crops = append(crops, fromCropDomain(c))
	}

	return crops
}

func toListingDomain(data *model.ProduceListingModel) *entity.ProduceListing {
	listing := &entity.ProduceListing{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		CropID:         data.CropID,
		Crop:           toCropDomain(data.Crop),
		Variety:        data.Variety,
		Quantity:       data.Quantity,
		Unit:           entity.ProduceUnit(data.Unit),
		Quality:        entity.ProduceQuality(data.Quality),
		Price:          data.Price,
		AvailableFrom:  data.AvailableFrom,
		PhotoKey:       data.PhotoKey,
		Description:    data.Description,
		GoogleMapsLink: data.GoogleMapsLink,
		IsAvailable:    data.IsAvailable,
		ListedAt:       data.ListedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		listing.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return listing
}

func fromListingDomain(data *entity.ProduceListing) *model.ProduceListingModel {
	listingM := &model.ProduceListingModel{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		CropID:         data.CropID,
		Variety:        data.Variety,
		Quantity:       data.Quantity,
		Unit:           string(data.Unit),
		Quality:        string(data.Quality),
		Price:          data.Price,
		AvailableFrom:  data.AvailableFrom,
		PhotoKey:       data.PhotoKey,
		Description:    data.Description,
		GoogleMapsLink: data.GoogleMapsLink,
		IsAvailable:    data.IsAvailable,
		ListedAt:       data.ListedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat(), data.Location.Lon()
		listingM.Latitude = &lat
		listingM.Longitude = &lng
	}

	return listingM
}
