package postgres

import (
	"context"
	"fmt"

	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one GORM transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) FarmerProfileRepo() repository.FarmerProfileRepository {
	return NewFarmerProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) BuyerProfileRepo() repository.BuyerProfileRepository {
	return NewBuyerProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) CropRepo() repository.CropRepository {
	return NewCropRepository(f.tx)
}

func (f *gormRepositoryFactory) ProduceRepo() repository.ProduceRepository {
	return NewProduceRepository(f.tx)
}

func (f *gormRepositoryFactory) FeedbackRepo() repository.FeedbackRepository {
	return NewFeedbackRepository(f.tx)
}

func (f *gormRepositoryFactory) MarketRepo() repository.MarketRepository {
	return NewMarketRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Fx or the recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
