// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountRepository defines persistence for accounts.
// Every Create and Update re-derives the staff/superuser flags from the role before saving.
type AccountRepository interface {
	// FindByID loads an account with its profile references attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate is FindByID with the account row locked until the
	// surrounding transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail looks an account up by its normalised email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
}
