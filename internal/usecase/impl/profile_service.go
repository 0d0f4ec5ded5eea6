package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/policy"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFarmerProfile locks the account, promotes it to farmer and stores the
// profile in one transaction.
func (srv *profileService) CreateFarmerProfile(ctx context.Context, accountID uuid.UUID, input *usecase.CreateFarmerProfileInput) (*entity.FarmerProfile, error) {
	var created *entity.FarmerProfile
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		accountRepo := txRepoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account.HasFarmerProfile() {
			return domainerrors.ErrProfileAlreadyExists.WithDetails("account already has a farmer profile")
		}

		crops, err := resolveCrops(ctx, txRepoFactory, input.CropTypeIDs)
		if err != nil {
			return err
		}

		profile := &entity.FarmerProfile{
			AccountID:               account.ID,
			IsGroup:                 input.IsGroup,
			FarmSize:                input.FarmSize,
			FarmSizeUnit:            input.FarmSizeUnit,
			YearsOfExperience:       input.YearsOfExperience,
			GroupName:               input.GroupName,
			GroupRegistrationNumber: input.GroupRegistrationNumber,
			GroupMembersCount:       input.GroupMembersCount,
			GroupFormationDate:      input.GroupFormationDate.TimePtr(),
			CropTypes:               crops,
			ExpectedHarvestDate:     input.ExpectedHarvestDate.TimePtr(),
			IDCardNumber:            input.IDCardNumber,
			Certification:           input.Certification,
			ContactPerson:           input.ContactPerson,
			ContactPhone:            input.ContactPhone,
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		if err := policy.Promote(account, entity.RoleFarmer); err != nil {
			return err
		}
		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}
		if err := txRepoFactory.FarmerProfileRepo().Create(ctx, profile); err != nil {
			return err
		}

		created = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create farmer profile")
	}

	srv.log(ctx).Info("Farmer profile created", slog.String("accountID", accountID.String()))
	srv.publish(ctx, service.EventProfileCreated, accountID, entity.RoleFarmer)

	return created, nil
}

// GetFarmerProfile returns the account together with its farmer profile.
func (srv *profileService) GetFarmerProfile(ctx context.Context, accountID uuid.UUID) (*usecase.AccountWithFarmerProfile, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}
	if !account.HasFarmerProfile() {
		return nil, domainerrors.ErrFarmerProfileNotFound
	}

	return &usecase.AccountWithFarmerProfile{Account: account, FarmerProfile: account.FarmerProfile}, nil
}

// UpdateFarmerProfile merges the patch into the stored profile and re-validates the result.
func (srv *profileService) UpdateFarmerProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateFarmerProfileInput) (*entity.FarmerProfile, error) {
	var updated *entity.FarmerProfile
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		profileRepo := txRepoFactory.FarmerProfileRepo()

		profile, err := profileRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		applyFarmerPatch(profile, input)
		if input.CropTypeIDs != nil {
			crops, err := resolveCrops(ctx, txRepoFactory, *input.CropTypeIDs)
			if err != nil {
				return err
			}
			profile.CropTypes = crops
		}

		if err := profile.Validate(); err != nil {
			return err
		}
		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update farmer profile")
	}

	srv.publish(ctx, service.EventProfileUpdated, accountID, entity.RoleFarmer)

	return updated, nil
}

// FarmerProfileQRCode renders a PNG share code for the caller's farmer profile.
func (srv *profileService) FarmerProfileQRCode(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}
	if !account.HasFarmerProfile() {
		return nil, domainerrors.ErrFarmerProfileNotFound
	}

	png, err := srv.qrService.GenerateFarmerQR(account.ID, account.FarmerProfile.DisplayName(account.Email))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate QR code: "+err.Error())
	}

	return png, nil
}

// CreateBuyerProfile locks the account, promotes it to buyer and stores the
// profile in one transaction.
func (srv *profileService) CreateBuyerProfile(ctx context.Context, accountID uuid.UUID, input *usecase.CreateBuyerProfileInput) (*entity.BuyerProfile, error) {
	var created *entity.BuyerProfile
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		accountRepo := txRepoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account.HasBuyerProfile() {
			return domainerrors.ErrProfileAlreadyExists.WithDetails("account already has a buyer profile")
		}

		crops, err := resolveCrops(ctx, txRepoFactory, input.PreferredProductIDs)
		if err != nil {
			return err
		}

		profile := &entity.BuyerProfile{
			AccountID:              account.ID,
			BusinessName:           input.BusinessName,
			RegistrationNumber:     input.RegistrationNumber,
			CompanyType:            input.CompanyType,
			PreferredProducts:      crops,
			DeliveryAddress:        input.DeliveryAddress,
			AdditionalAddresses:    slices.Clone(input.AdditionalAddresses),
			ContactPerson:          input.ContactPerson,
			ContactPhone:           input.ContactPhone,
			TaxIdentification:      input.TaxIdentification,
			PreferredCommunication: input.PreferredCommunication,
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		if err := policy.Promote(account, entity.RoleBuyer); err != nil {
			return err
		}
		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}
		if err := txRepoFactory.BuyerProfileRepo().Create(ctx, profile); err != nil {
			return err
		}

		created = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create buyer profile")
	}

	srv.log(ctx).Info("Buyer profile created", slog.String("accountID", accountID.String()))
	srv.publish(ctx, service.EventProfileCreated, accountID, entity.RoleBuyer)

	return created, nil
}

// GetBuyerProfile returns the account together with its buyer profile.
func (srv *profileService) GetBuyerProfile(ctx context.Context, accountID uuid.UUID) (*usecase.AccountWithBuyerProfile, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}
	if !account.HasBuyerProfile() {
		return nil, domainerrors.ErrBuyerProfileNotFound
	}

	return &usecase.AccountWithBuyerProfile{Account: account, BuyerProfile: account.BuyerProfile}, nil
}

// UpdateBuyerProfile merges the patch into the stored profile and re-validates the result.
func (srv *profileService) UpdateBuyerProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateBuyerProfileInput) (*entity.BuyerProfile, error) {
	var updated *entity.BuyerProfile
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		profileRepo := txRepoFactory.BuyerProfileRepo()

		profile, err := profileRepo.FindByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		applyBuyerPatch(profile, input)
		if input.PreferredProductIDs != nil {
			crops, err := resolveCrops(ctx, txRepoFactory, *input.PreferredProductIDs)
			if err != nil {
				return err
			}
			profile.PreferredProducts = crops
		}

		if err := profile.Validate(); err != nil {
			return err
		}
		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update buyer profile")
	}

	srv.publish(ctx, service.EventProfileUpdated, accountID, entity.RoleBuyer)

	return updated, nil
}

// publish sends a lifecycle event after commit. Failures are logged and never returned.
func (srv *profileService) publish(ctx context.Context, eventType string, accountID uuid.UUID, role entity.Role) {
	event := &service.ProfileEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  accountID.String(),
		Role:       role.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile event",
			slog.String("type", eventType),
			slog.String("accountID", event.AccountID),
			slog.Any("error", err))
	}
}

// resolveCrops loads the referenced crops, failing validation when any ID is unknown.
func resolveCrops(ctx context.Context, txRepoFactory repository.RepositoryFactory, ids []uuid.UUID) ([]*entity.Crop, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	crops, err := txRepoFactory.CropRepo().FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(crops) != len(unique) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("one or more crops do not exist")
	}

	return crops, nil
}

func applyFarmerPatch(p *entity.FarmerProfile, in *usecase.UpdateFarmerProfileInput) {
	if in.IsGroup != nil {
		p.IsGroup = *in.IsGroup
	}
	if in.FarmSize != nil {
		p.FarmSize = in.FarmSize
	}
	if in.FarmSizeUnit != nil {
		p.FarmSizeUnit = *in.FarmSizeUnit
	}
	if in.YearsOfExperience != nil {
		p.YearsOfExperience = in.YearsOfExperience
	}
	if in.GroupName != nil {
		p.GroupName = *in.GroupName
	}
	if in.GroupRegistrationNumber != nil {
		p.GroupRegistrationNumber = *in.GroupRegistrationNumber
	}
	if in.GroupMembersCount != nil {
		p.GroupMembersCount = in.GroupMembersCount
	}
	if in.GroupFormationDate != nil {
		p.GroupFormationDate = in.GroupFormationDate.TimePtr()
	}
	if in.ExpectedHarvestDate != nil {
		p.ExpectedHarvestDate = in.ExpectedHarvestDate.TimePtr()
	}
	if in.IDCardNumber != nil {
		p.IDCardNumber = *in.IDCardNumber
	}
	if in.Certification != nil {
		p.Certification = *in.Certification
	}
	if in.ContactPerson != nil {
		p.ContactPerson = *in.ContactPerson
	}
	if in.ContactPhone != nil {
		p.ContactPhone = *in.ContactPhone
	}
}

func applyBuyerPatch(p *entity.BuyerProfile, in *usecase.UpdateBuyerProfileInput) {
	if in.BusinessName != nil {
		p.BusinessName = *in.BusinessName
	}
	if in.RegistrationNumber != nil {
		p.RegistrationNumber = *in.RegistrationNumber
	}
	if in.CompanyType != nil {
		p.CompanyType = *in.CompanyType
	}
	if in.DeliveryAddress != nil {
		p.DeliveryAddress = *in.DeliveryAddress
	}
	if in.AdditionalAddresses != nil {
		p.AdditionalAddresses = slices.Clone(*in.AdditionalAddresses)
	}
	if in.ContactPerson != nil {
		p.ContactPerson = *in.ContactPerson
	}
	if in.ContactPhone != nil {
		p.ContactPhone = *in.ContactPhone
	}
	if in.TaxIdentification != nil {
		p.TaxIdentification = *in.TaxIdentification
	}
	if in.PreferredCommunication != nil {
		p.PreferredCommunication = *in.PreferredCommunication
	}
}
