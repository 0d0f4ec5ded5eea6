package postgres

import (
	"context"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// farmerProfileRepository implements repository.FarmerProfileRepository using GORM.
type farmerProfileRepository struct {
	db *gorm.DB
}

// NewFarmerProfileRepository is the constructor for farmerProfileRepository.
func NewFarmerProfileRepository(db *gorm.DB) repository.FarmerProfileRepository {
	return &farmerProfileRepository{db: db}
}

func (repo *farmerProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.FarmerProfile, error) {
	var profileM model.FarmerProfileModel
	err := repo.db.WithContext(ctx).
		Preload("CropTypes", orderCropsByName).
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFarmerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer profile")
	}

	return toFarmerProfileDomain(&profileM), nil
}

// Create inserts the profile and links existing crops without touching the crops table.
func (repo *farmerProfileRepository) Create(ctx context.Context, profile *entity.FarmerProfile) error {
	profileM := fromFarmerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("CropTypes.*").Create(profileM).Error; err != nil {
		return mapProfileWriteError(err, "failed to create farmer profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update saves scalar columns, then replaces the crop links.
func (repo *farmerProfileRepository) Update(ctx context.Context, profile *entity.FarmerProfile) error {
	profileM := fromFarmerProfileDomain(profile)
	db := repo.db.WithContext(ctx)

	result := db.Model(profileM).Omit(clause.Associations, "CreatedAt").Select("*").Updates(profileM)
	if err := result.Error; err != nil {
		return mapProfileWriteError(err, "failed to update farmer profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrFarmerProfileNotFound
	}

	if err := db.Omit("CropTypes.*").Model(profileM).Association("CropTypes").Replace(profileM.CropTypes); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace farmer crop types")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// buyerProfileRepository implements repository.BuyerProfileRepository using GORM.
type buyerProfileRepository struct {
	db *gorm.DB
}

// NewBuyerProfileRepository is the constructor for buyerProfileRepository.
func NewBuyerProfileRepository(db *gorm.DB) repository.BuyerProfileRepository {
	return &buyerProfileRepository{db: db}
}

func (repo *buyerProfileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.BuyerProfile, error) {
	var profileM model.BuyerProfileModel
	err := repo.db.WithContext(ctx).
		Preload("PreferredProducts", orderCropsByName).
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBuyerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer profile")
	}

	return toBuyerProfileDomain(&profileM), nil
}

func (repo *buyerProfileRepository) Create(ctx context.Context, profile *entity.BuyerProfile) error {
	profileM := fromBuyerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("PreferredProducts.*").Create(profileM).Error; err != nil {
		return mapProfileWriteError(err, "failed to create buyer profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *buyerProfileRepository) Update(ctx context.Context, profile *entity.BuyerProfile) error {
	profileM := fromBuyerProfileDomain(profile)
	db := repo.db.WithContext(ctx)

	result := db.Model(profileM).Omit(clause.Associations, "CreatedAt").Select("*").Updates(profileM)
	if err := result.Error; err != nil {
		return mapProfileWriteError(err, "failed to update buyer profile")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBuyerProfileNotFound
	}

	if err := db.Omit("PreferredProducts.*").Model(profileM).Association("PreferredProducts").Replace(profileM.PreferredProducts); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace buyer preferred products")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func orderCropsByName(db *gorm.DB) *gorm.DB {
	return db.Order("crops.name")
}

// mapProfileWriteError turns constraint violations into domain errors.
// The profile primary key is the account ID, so a unique violation means a second profile.
func mapProfileWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrProfileAlreadyExists
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("profile references an unknown account or crop")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toFarmerProfileDomain(data *model.FarmerProfileModel) *entity.FarmerProfile {
	if data == nil {
		return nil
	}

	return &entity.FarmerProfile{
		AccountID:               data.AccountID,
		IsGroup:                 data.IsGroup,
		FarmSize:                data.FarmSize,
		FarmSizeUnit:            entity.FarmUnit(data.FarmSizeUnit),
		YearsOfExperience:       data.YearsOfExperience,
		GroupName:               data.GroupName,
		GroupRegistrationNumber: data.GroupRegistrationNumber,
		GroupMembersCount:       data.GroupMembersCount,
		GroupFormationDate:      data.GroupFormationDate,
		CropTypes:               toCropsDomain(data.CropTypes),
		ExpectedHarvestDate:     data.ExpectedHarvestDate,
		IDCardNumber:            data.IDCardNumber,
		Certification:           data.Certification,
		ContactPerson:           data.ContactPerson,
		ContactPhone:            data.ContactPhone,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func fromFarmerProfileDomain(data *entity.FarmerProfile) *model.FarmerProfileModel {
	if data == nil {
		return nil
	}

	return &model.FarmerProfileModel{
		AccountID:               data.AccountID,
		IsGroup:                 data.IsGroup,
		FarmSize:                data.FarmSize,
		FarmSizeUnit:            string(data.FarmSizeUnit),
		YearsOfExperience:       data.YearsOfExperience,
		GroupName:               data.GroupName,
		GroupRegistrationNumber: data.GroupRegistrationNumber,
		GroupMembersCount:       data.GroupMembersCount,
		GroupFormationDate:      data.GroupFormationDate,
		CropTypes:               fromCropsDomain(data.CropTypes),
		ExpectedHarvestDate:     data.ExpectedHarvestDate,
		IDCardNumber:            data.IDCardNumber,
		Certification:           data.Certification,
		ContactPerson:           data.ContactPerson,
		ContactPhone:            data.ContactPhone,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func toBuyerProfileDomain(data *model.BuyerProfileModel) *entity.BuyerProfile {
	if data == nil {
		return nil
	}

	addresses := make([]entity.DeliveryAddress, 0, len(data.AdditionalAddresses))
	for _, addr := range data.AdditionalAddresses {
		addresses = append(addresses, entity.DeliveryAddress(addr))
	}

	return &entity.BuyerProfile{
		AccountID:              data.AccountID,
		BusinessName:           data.BusinessName,
		RegistrationNumber:     data.RegistrationNumber,
		CompanyType:            entity.CompanyType(data.CompanyType),
		PreferredProducts:      toCropsDomain(data.PreferredProducts),
		DeliveryAddress:        data.DeliveryAddress,
		AdditionalAddresses:    addresses,
		ContactPerson:          data.ContactPerson,
		ContactPhone:           data.ContactPhone,
		TaxIdentification:      data.TaxIdentification,
		PreferredCommunication: entity.CommunicationChannel(data.PreferredCommunication),
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromBuyerProfileDomain(data *entity.BuyerProfile) *model.BuyerProfileModel {
	if data == nil {
		return nil
	}

	addresses := make([]model.DeliveryAddressJSON, 0, len(data.AdditionalAddresses))
	for _, addr := range data.AdditionalAddresses {
		addresses = append(addresses, model.DeliveryAddressJSON(addr))
	}

	return &model.BuyerProfileModel{
		AccountID:              data.AccountID,
		BusinessName:           data.BusinessName,
		RegistrationNumber:     data.RegistrationNumber,
		CompanyType:            string(data.CompanyType),
		PreferredProducts:      fromCropsDomain(data.PreferredProducts),
		DeliveryAddress:        data.DeliveryAddress,
		AdditionalAddresses:    addresses,
		ContactPerson:          data.ContactPerson,
		ContactPhone:           data.ContactPhone,
		TaxIdentification:      data.TaxIdentification,
		PreferredCommunication: string(data.PreferredCommunication),
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
