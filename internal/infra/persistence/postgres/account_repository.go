// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("FarmerProfile.CropTypes").
		Preload("BuyerProfile.PreferredProducts")
}

// FindByID retrieves an account with both optional profiles attached.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(repo.withProfiles(ctx).Where("id = ?", id), "failed to find account by id")
}

// FindByIDForUpdate locks the account row on the primary until the transaction ends.
// SQLite ignores the locking clause; its single writer gives the same guarantee.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := repo.withProfiles(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id)

	return repo.first(query, "failed to lock account")
}

// FindByEmail retrieves an account by its normalised email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(repo.withProfiles(ctx).Where("email = ?", entity.NormalizeEmail(email)), "failed to find account by email")
}

func (repo *accountRepository) first(query *gorm.DB, failure string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := query.First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. Profiles are created through their own repositories.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}
	account.Email = entity.NormalizeEmail(account.Email)
	account.SyncPrivileges()

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update saves the account's own columns. The privilege flags are re-derived from the role first.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	account.Email = entity.NormalizeEmail(account.Email)
	account.SyncPrivileges()

	accountM := fromAccountDomain(account)
	result := repo.db.WithContext(ctx).
		Model(accountM).
		Omit(clause.Associations, "CreatedAt").
		Select("*").
		Updates(accountM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Role:              entity.Role(data.Role),
		PhoneNumber:       data.PhoneNumber,
		Location:          data.Location,
		Verified:          data.Verified,
		PreferredLanguage: entity.Language(data.PreferredLanguage),
		IsStaff:           data.IsStaff,
		IsSuperuser:       data.IsSuperuser,
		FarmerProfile:     toFarmerProfileDomain(data.FarmerProfile),
		BuyerProfile:      toBuyerProfileDomain(data.BuyerProfile),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                data.ID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		Role:              data.Role.String(),
		PhoneNumber:       data.PhoneNumber,
		Location:          data.Location,
		Verified:          data.Verified,
		PreferredLanguage: string(data.PreferredLanguage),
		IsStaff:           data.IsStaff,
		IsSuperuser:       data.IsSuperuser,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
