package impl

import (
	"context"
	"testing"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	mockRepo "farmlink/internal/mocks/repository"
	mockSvc "farmlink/internal/mocks/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accountRepo,
		QRService:   fx.qrService,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func guestAccount() *entity.Account {
	return &entity.Account{
		ID:    uuid.Must(uuid.NewV7()),
		Email: "jane@farm.example",
		Role:  entity.RoleGuest,
	}
}

func eventOf(eventType string, role entity.Role) any {
	return mock.MatchedBy(func(e *service.ProfileEvent) bool {
		return e.Type == eventType && e.Role == role.String()
	})
}

func TestProfileService_CreateFarmerProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	maize := &entity.Crop{ID: uuid.Must(uuid.NewV7()), Name: "Maize", Slug: "maize"}
	farmSize := 5.0
	input := &usecase.CreateFarmerProfileInput{
		FarmSize:    &farmSize,
		CropTypeIDs: []uuid.UUID{maize.ID, maize.ID},
	}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		cropRepo := mockRepo.NewMockCropRepository(t)
		profileRepo := mockRepo.NewMockFarmerProfileRepository(t)

		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().CropRepo().Return(cropRepo)
		factory.EXPECT().FarmerProfileRepo().Return(profileRepo)

		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
		cropRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{maize.ID}).Return([]*entity.Crop{maize}, nil)
		accountRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(a *entity.Account) bool { return a.Role == entity.RoleFarmer })).
			Return(nil)
		profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FarmerProfile")).Return(nil)
	})
	fx.publisher.EXPECT().PublishProfileEvent(ctx, eventOf(service.EventProfileCreated, entity.RoleFarmer)).Return(nil)

	profile, err := fx.service.CreateFarmerProfile(ctx, account.ID, input)

	require.NoError(t, err)
	assert.Equal(t, account.ID, profile.AccountID)
	assert.Equal(t, entity.FarmUnitAcres, profile.FarmSizeUnit)
	assert.Equal(t, []*entity.Crop{maize}, profile.CropTypes)
	assert.Equal(t, entity.RoleFarmer, account.Role)
	assert.False(t, account.IsStaff)
	assert.False(t, account.IsSuperuser)
}

func TestProfileService_CreateFarmerProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	account.Role = entity.RoleFarmer
	account.FarmerProfile = &entity.FarmerProfile{AccountID: account.ID}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	})

	farmSize := 1.0
	_, err := fx.service.CreateFarmerProfile(ctx, account.ID, &usecase.CreateFarmerProfileInput{FarmSize: &farmSize})

	require.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
	assert.Contains(t, err.Error(), "account already has a farmer profile")
}

func TestProfileService_CreateFarmerProfile_ValidationFailsBeforeMutation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateFarmerProfileInput
	}{
		{name: "group without name", input: &usecase.CreateFarmerProfileInput{IsGroup: true}},
		{name: "individual without farm size", input: &usecase.CreateFarmerProfileInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			account := guestAccount()

			onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				accountRepo := mockRepo.NewMockAccountRepository(t)
				factory.EXPECT().AccountRepo().Return(accountRepo)
				accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
			})

			_, err := fx.service.CreateFarmerProfile(ctx, account.ID, tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, entity.RoleGuest, account.Role)
		})
	}
}

func TestProfileService_CreateFarmerProfile_BuyerCannotBecomeFarmer(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	account.Role = entity.RoleBuyer
	account.BuyerProfile = &entity.BuyerProfile{AccountID: account.ID}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	})

	farmSize := 2.0
	_, err := fx.service.CreateFarmerProfile(ctx, account.ID, &usecase.CreateFarmerProfileInput{FarmSize: &farmSize})

	require.ErrorIs(t, err, domainerrors.ErrRoleTransitionNotAllowed)
	assert.Equal(t, entity.RoleBuyer, account.Role)
}

func TestProfileService_CreateFarmerProfile_UnknownCrop(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	missing := uuid.Must(uuid.NewV7())

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		cropRepo := mockRepo.NewMockCropRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().CropRepo().Return(cropRepo)
		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
		cropRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{missing}).Return([]*entity.Crop{}, nil)
	})

	farmSize := 2.0
	_, err := fx.service.CreateFarmerProfile(ctx, account.ID, &usecase.CreateFarmerProfileInput{
		FarmSize:    &farmSize,
		CropTypeIDs: []uuid.UUID{missing},
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_CreateFarmerProfile_ConcurrentDuplicateSurfaces(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		profileRepo := mockRepo.NewMockFarmerProfileRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().FarmerProfileRepo().Return(profileRepo)
		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, account).Return(nil)
		profileRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrProfileAlreadyExists)
	})

	farmSize := 2.0
	_, err := fx.service.CreateFarmerProfile(ctx, account.ID, &usecase.CreateFarmerProfileInput{FarmSize: &farmSize})

	require.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
	fx.publisher.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}

func TestProfileService_CreateBuyerProfile_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	input := &usecase.CreateBuyerProfileInput{
		BusinessName:    "Fresh Mart",
		CompanyType:     entity.CompanyTypeSupermarket,
		DeliveryAddress: "Moi Avenue",
		ContactPerson:   "Amina",
		ContactPhone:    "+254700000001",
	}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		profileRepo := mockRepo.NewMockBuyerProfileRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().BuyerProfileRepo().Return(profileRepo)
		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
		accountRepo.EXPECT().Update(ctx, account).Return(nil)
		profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BuyerProfile")).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishProfileEvent(ctx, eventOf(service.EventProfileCreated, entity.RoleBuyer)).
		Return(errors.New("pubsub unavailable"))

	profile, err := fx.service.CreateBuyerProfile(ctx, account.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.CommunicationEmail, profile.PreferredCommunication)
	assert.Equal(t, entity.RoleBuyer, account.Role)
}

func TestProfileService_CreateBuyerProfile_FarmerCannotBecomeBuyer(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	account.Role = entity.RoleFarmer
	account.FarmerProfile = &entity.FarmerProfile{AccountID: account.ID}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	})

	_, err := fx.service.CreateBuyerProfile(ctx, account.ID, &usecase.CreateBuyerProfileInput{
		BusinessName:    "Fresh Mart",
		CompanyType:     entity.CompanyTypeSupermarket,
		DeliveryAddress: "Moi Avenue",
		ContactPerson:   "Amina",
		ContactPhone:    "+254700000001",
	})

	require.ErrorIs(t, err, domainerrors.ErrRoleTransitionNotAllowed)
}

func TestProfileService_GetFarmerProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	withProfile := guestAccount()
	withProfile.Role = entity.RoleFarmer
	withProfile.FarmerProfile = &entity.FarmerProfile{AccountID: withProfile.ID}
	without := guestAccount()

	fx.accountRepo.EXPECT().FindByID(ctx, withProfile.ID).Return(withProfile, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, without.ID).Return(without, nil)

	got, err := fx.service.GetFarmerProfile(ctx, withProfile.ID)
	require.NoError(t, err)
	assert.Same(t, withProfile.FarmerProfile, got.FarmerProfile)
	assert.Equal(t, withProfile.Email, got.Email)

	_, err = fx.service.GetFarmerProfile(ctx, without.ID)
	require.ErrorIs(t, err, domainerrors.ErrFarmerProfileNotFound)
}

func TestProfileService_GetBuyerProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	_, err := fx.service.GetBuyerProfile(ctx, account.ID)

	require.ErrorIs(t, err, domainerrors.ErrBuyerProfileNotFound)
}

func TestProfileService_UpdateFarmerProfile_RevalidatesMergedRecord(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())
	farmSize := 3.0
	stored := &entity.FarmerProfile{AccountID: accountID, FarmSize: &farmSize, FarmSizeUnit: entity.FarmUnitAcres}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockFarmerProfileRepository(t)
		factory.EXPECT().FarmerProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(stored, nil)
	})

	isGroup := true
	_, err := fx.service.UpdateFarmerProfile(ctx, accountID, &usecase.UpdateFarmerProfileInput{IsGroup: &isGroup})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateFarmerProfile_SwitchingSubtypeClearsOtherFields(t *testing.T) {
	t.Run("individual becomes a group", func(t *testing.T) {
		fx := createTestProfileService(t)

		ctx := context.Background()
		accountID := uuid.Must(uuid.NewV7())
		stored := &entity.FarmerProfile{
			AccountID:         accountID,
			FarmSize:          ptr(3.0),
			FarmSizeUnit:      entity.FarmUnitHectares,
			YearsOfExperience: ptr(7),
		}

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockFarmerProfileRepository(t)
			factory.EXPECT().FarmerProfileRepo().Return(profileRepo)
			profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(stored, nil)
			profileRepo.EXPECT().Update(ctx, stored).Return(nil)
		})

		updated, err := fx.service.UpdateFarmerProfile(ctx, accountID, &usecase.UpdateFarmerProfileInput{
			IsGroup:   ptr(true),
			GroupName: ptr("Kilimo Co-op"),
		})

		require.NoError(t, err)
		assert.True(t, updated.IsGroup)
		assert.Nil(t, updated.FarmSize)
		assert.Nil(t, updated.YearsOfExperience)
		assert.Equal(t, "Kilimo Co-op", updated.GroupName)
	})

	t.Run("group becomes an individual", func(t *testing.T) {
		fx := createTestProfileService(t)

		ctx := context.Background()
		accountID := uuid.Must(uuid.NewV7())
		stored := &entity.FarmerProfile{
			AccountID:               accountID,
			IsGroup:                 true,
			GroupName:               "Kilimo Co-op",
			GroupRegistrationNumber: "CG-114",
			GroupMembersCount:       ptr(25),
		}

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			profileRepo := mockRepo.NewMockFarmerProfileRepository(t)
			factory.EXPECT().FarmerProfileRepo().Return(profileRepo)
			profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(stored, nil)
			profileRepo.EXPECT().Update(ctx, stored).Return(nil)
		})

		updated, err := fx.service.UpdateFarmerProfile(ctx, accountID, &usecase.UpdateFarmerProfileInput{
			IsGroup:  ptr(false),
			FarmSize: ptr(1.5),
		})

		require.NoError(t, err)
		assert.False(t, updated.IsGroup)
		assert.Empty(t, updated.GroupName)
		assert.Empty(t, updated.GroupRegistrationNumber)
		assert.Nil(t, updated.GroupMembersCount)
		require.NotNil(t, updated.FarmSize)
		assert.InDelta(t, 1.5, *updated.FarmSize, 1e-9)
	})
}

func TestProfileService_UpdateFarmerProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV7())
	farmSize := 3.0
	stored := &entity.FarmerProfile{AccountID: accountID, FarmSize: &farmSize, FarmSizeUnit: entity.FarmUnitAcres, Certification: "KEBS"}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockFarmerProfileRepository(t)
		factory.EXPECT().FarmerProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(stored, nil)
		profileRepo.EXPECT().Update(ctx, stored).Return(nil)
	})
	fx.publisher.EXPECT().PublishProfileEvent(ctx, eventOf(service.EventProfileUpdated, entity.RoleFarmer)).Return(nil)

	unit := entity.FarmUnitHectares
	phone := "+254711111111"
	updated, err := fx.service.UpdateFarmerProfile(ctx, accountID, &usecase.UpdateFarmerProfileInput{
		FarmSizeUnit: &unit,
		ContactPhone: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.FarmUnitHectares, updated.FarmSizeUnit)
	assert.Equal(t, phone, updated.ContactPhone)
	assert.Equal(t, "KEBS", updated.Certification)
	assert.Equal(t, accountID, updated.AccountID)
}

func TestProfileService_FarmerProfileQRCode(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	account := guestAccount()
	account.Role = entity.RoleFarmer
	account.FarmerProfile = &entity.FarmerProfile{AccountID: account.ID, IsGroup: true, GroupName: "Kilimo"}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.qrService.EXPECT().GenerateFarmerQR(account.ID, "Kilimo (Group)").Return([]byte("png"), nil)

	png, err := fx.service.FarmerProfileQRCode(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
