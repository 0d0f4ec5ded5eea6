// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	minPassword  int
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPassword := 0
	if params.Config != nil && params.Config.Auth != nil {
		minPassword = params.Config.Auth.MinPassword
	}

	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		minPassword:  minPassword,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a guest account. The two password fields must match exactly.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if input.Password != input.Password2 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("passwords don't match")
	}
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}
	if input.PhoneNumber != "" && !entity.IsValidPhone(input.PhoneNumber) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone number must look like +999999999 with 9 to 15 digits")
	}

	lang := input.PreferredLanguage
	if lang == "" {
		lang = entity.LanguageEnglish
	}
	if !lang.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported language: " + string(lang))
	}

	account := &entity.Account{
		Email:             entity.NormalizeEmail(input.Email),
		Role:              entity.RoleGuest,
		PhoneNumber:       input.PhoneNumber,
		Location:          input.Location,
		PreferredLanguage: lang,
	}
	if err := account.ValidateContact(); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	account.PasswordHash = hash

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))

	return account, nil
}

// Login checks the credentials and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerrors.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("accountID", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(account.ID, account.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		Account:     account,
	}, nil
}

// GetMe returns the caller's own account.
func (srv *accountService) GetMe(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// UpdateMe applies a partial update to the caller's contact fields.
func (srv *accountService) UpdateMe(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		accountRepo := txRepoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		if input.Email != nil {
			email := entity.NormalizeEmail(*input.Email)
			if email == "" {
				return domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
			}
			account.Email = email
		}
		if input.PhoneNumber != nil {
			if *input.PhoneNumber != "" && !entity.IsValidPhone(*input.PhoneNumber) {
				return domainerrors.ErrValidationFailed.WithDetails("phone number must look like +999999999 with 9 to 15 digits")
			}
			account.PhoneNumber = *input.PhoneNumber
		}
		if input.Location != nil {
			account.Location = *input.Location
		}
		if input.PreferredLanguage != nil {
			if !input.PreferredLanguage.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("unsupported language: " + string(*input.PreferredLanguage))
			}
			account.PreferredLanguage = *input.PreferredLanguage
		}
		if err := account.ValidateContact(); err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return updated, nil
}

// CreateAdmin creates a verified administrator account.
func (srv *accountService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.Account, error) {
	if entity.NormalizeEmail(input.Email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Email:             input.Email,
		PasswordHash:      hash,
		Role:              entity.RoleAdmin,
		Verified:          true,
		PreferredLanguage: entity.LanguageEnglish,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin account created", slog.String("accountID", account.ID.String()))

	return account, nil
}

// SetVerified marks the account registered under email as verified or not.
func (srv *accountService) SetVerified(ctx context.Context, email string, verified bool) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		accountRepo := txRepoFactory.AccountRepo()

		account, err := accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}

		account.Verified = verified
		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set verification")
	}

	srv.log(ctx).Info("Account verification changed",
		slog.String("accountID", updated.ID.String()),
		slog.Bool("verified", verified))

	return updated, nil
}

func (srv *accountService) checkPassword(password string) error {
	if utf8.RuneCountInString(password) < srv.minPassword {
		return domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}

	return nil
}
