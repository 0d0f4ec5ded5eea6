package postgres

import (
	"context"
	"testing"
	"time"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func createAccount(t *testing.T, db *gorm.DB, email string) *entity.Account {
	t.Helper()

	account := &entity.Account{
		Email:             email,
		PasswordHash:      "hash",
		Role:              entity.RoleGuest,
		PreferredLanguage: entity.LanguageEnglish,
	}
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), account))

	return account
}

func createCrop(t *testing.T, db *gorm.DB, name string) *entity.Crop {
	t.Helper()

	crop := &entity.Crop{
		Name:     entity.NormalizeCropName(name),
		Category: entity.CropCategoryCereal,
		Slug:     entity.Slugify(name),
	}
	require.NoError(t, NewCropRepository(db).Create(context.Background(), crop))

	return crop
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := NewAccountRepository(db)

	account := createAccount(t, db, "  Jane@Farm.Example ")
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "jane@farm.example", account.Email)

	found, err := repo.FindByEmail(ctx, "JANE@farm.example")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Nil(t, found.FarmerProfile)
	assert.Nil(t, found.BuyerProfile)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := testdb.New(t)
	createAccount(t, db, "dup@farm.example")

	err := NewAccountRepository(db).Create(context.Background(), &entity.Account{
		Email:        "DUP@farm.example",
		PasswordHash: "hash",
		Role:         entity.RoleGuest,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountRepository_UpdateSyncsPrivileges(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := NewAccountRepository(db)
	account := createAccount(t, db, "admin@farm.example")

	account.Role = entity.RoleAdmin
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, found.IsStaff)
	assert.True(t, found.IsSuperuser)

	found.Role = entity.RoleGuest
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, found.IsStaff)
	assert.False(t, found.IsSuperuser)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestFarmerProfileRepository_Lifecycle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	account := createAccount(t, db, "farmer@farm.example")
	maize := createCrop(t, db, "maize")
	beans := createCrop(t, db, "beans")
	repo := NewFarmerProfileRepository(db)

	profile := &entity.FarmerProfile{
		AccountID:    account.ID,
		FarmSize:     ptr(2.5),
		FarmSizeUnit: entity.FarmUnitAcres,
		CropTypes:    []*entity.Crop{maize},
		ContactPhone: "+254712345678",
	}
	require.NoError(t, repo.Create(ctx, profile))

	err := repo.Create(ctx, &entity.FarmerProfile{AccountID: account.ID, FarmSize: ptr(1.0), FarmSizeUnit: entity.FarmUnitAcres})
	require.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)

	loaded, err := NewAccountRepository(db).FindByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.FarmerProfile)
	require.Len(t, loaded.FarmerProfile.CropTypes, 1)
	assert.Equal(t, "Maize", loaded.FarmerProfile.CropTypes[0].Name)

	profile.CropTypes = []*entity.Crop{beans}
	profile.Certification = "organic"
	require.NoError(t, repo.Update(ctx, profile))

	updated, err := repo.FindByAccountID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "organic", updated.Certification)
	require.Len(t, updated.CropTypes, 1)
	assert.Equal(t, beans.ID, updated.CropTypes[0].ID)
	assert.InDelta(t, 2.5, *updated.FarmSize, 0.001)

	var cropCount int64
	require.NoError(t, db.Table("crops").Count(&cropCount).Error)
	assert.Equal(t, int64(2), cropCount, "linking must not duplicate catalog rows")

	_, err = repo.FindByAccountID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrFarmerProfileNotFound)
}

func TestBuyerProfileRepository_AdditionalAddresses(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	account := createAccount(t, db, "buyer@farm.example")
	repo := NewBuyerProfileRepository(db)

	profile := &entity.BuyerProfile{
		AccountID:       account.ID,
		BusinessName:    "Fresh Mart",
		CompanyType:     entity.CompanyTypeSupermarket,
		DeliveryAddress: "Moi Avenue",
		AdditionalAddresses: []entity.DeliveryAddress{
			{Label: "Depot", FullAddress: "Thika Road", Latitude: ptr(-1.21), Longitude: ptr(36.88)},
			{Label: "Shop", FullAddress: "Westlands"},
		},
		ContactPerson:          "Amina",
		ContactPhone:           "+254700000001",
		PreferredCommunication: entity.CommunicationWhatsApp,
	}
	require.NoError(t, repo.Create(ctx, profile))

	loaded, err := repo.FindByAccountID(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, loaded.AdditionalAddresses, 2)
	assert.Equal(t, "Depot", loaded.AdditionalAddresses[0].Label)
	assert.InDelta(t, -1.21, *loaded.AdditionalAddresses[0].Latitude, 1e-9)
	assert.Nil(t, loaded.AdditionalAddresses[1].Latitude)
	assert.Equal(t, entity.CommunicationWhatsApp, loaded.PreferredCommunication)
	assert.Empty(t, loaded.PreferredProducts)
}

func TestCropRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := NewCropRepository(db)
	maize := createCrop(t, db, "maize")

	err := repo.Create(ctx, &entity.Crop{Name: "Maize", Category: entity.CropCategoryCereal, Slug: "maize-2"})
	require.ErrorIs(t, err, domainerrors.ErrCropAlreadyExists)

	found, err := repo.FindBySlug(ctx, "maize")
	require.NoError(t, err)
	assert.Equal(t, maize.ID, found.ID)

	crops, err := repo.FindByIDs(ctx, []uuid.UUID{maize.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, crops, 1)

	_, err = repo.FindBySlug(ctx, "teff")
	assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
}

func TestProduceRepository_ListAvailable(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	farmer := createAccount(t, db, "grower@farm.example")
	maize := createCrop(t, db, "maize")
	beans := createCrop(t, db, "beans")
	repo := NewProduceRepository(db)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	newListing := func(crop *entity.Crop, listedAt time.Time, available bool) *entity.ProduceListing {
		loc := orb.Point{36.8219, -1.2921}
		l := &entity.ProduceListing{
			FarmerID:      farmer.ID,
			CropID:        crop.ID,
			Variety:       "local",
			Quantity:      10,
			Unit:          entity.ProduceUnitKilogram,
			Quality:       entity.ProduceQualityStandard,
			Price:         100,
			AvailableFrom: base,
			Location:      &loc,
			IsAvailable:   available,
			ListedAt:      listedAt,
		}
		require.NoError(t, repo.Create(ctx, l))

		return l
	}

	older := newListing(maize, base, true)
	newer := newListing(maize, base.Add(time.Hour), true)
	newListing(beans, base.Add(2*time.Hour), true)
	newListing(maize, base.Add(3*time.Hour), false)

	listings, err := repo.ListAvailable(ctx, repository.ListingFilter{CropSlug: "maize"})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, newer.ID, listings[0].ID)
	assert.Equal(t, older.ID, listings[1].ID)
	require.NotNil(t, listings[0].Crop)
	assert.Equal(t, "maize", listings[0].Crop.Slug)
	require.NotNil(t, listings[0].Location)
	assert.InDelta(t, -1.2921, listings[0].Location.Lat(), 1e-6)

	all, err := repo.ListAvailable(ctx, repository.ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	older.IsAvailable = false
	require.NoError(t, repo.Update(ctx, older))
	reloaded, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsAvailable)
	assert.True(t, reloaded.ListedAt.Equal(base))
}

func TestFeedbackRepository_NewestFirst(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	reviewer := createAccount(t, db, "reviewer@farm.example")
	reviewed := createAccount(t, db, "reviewed@farm.example")
	repo := NewFeedbackRepository(db)

	first := &entity.Feedback{ReviewerID: reviewer.ID, ReviewedAccountID: reviewed.ID, Rating: 3, CreatedAt: time.Now().Add(-time.Hour)}
	second := &entity.Feedback{ReviewerID: reviewer.ID, ReviewedAccountID: reviewed.ID, Rating: 5}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	feedback, err := repo.ListForAccount(ctx, reviewed.ID)
	require.NoError(t, err)
	require.Len(t, feedback, 2)
	assert.Equal(t, second.ID, feedback[0].ID)

	none, err := repo.ListForAccount(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	account := createAccount(t, db, "tx@farm.example")
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		locked, err := f.AccountRepo().FindByIDForUpdate(ctx, account.ID)
		if err != nil {
			return err
		}
		locked.Role = entity.RoleFarmer
		if err := f.AccountRepo().Update(ctx, locked); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	found, err := NewAccountRepository(db).FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuest, found.Role)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	account := createAccount(t, db, "commit@farm.example")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.BuyerProfileRepo().Create(ctx, &entity.BuyerProfile{
			AccountID:              account.ID,
			BusinessName:           "Kiosk",
			CompanyType:            entity.CompanyTypeIndividual,
			DeliveryAddress:        "Kisumu",
			ContactPerson:          "Otieno",
			ContactPhone:           "+254711111111",
			PreferredCommunication: entity.CommunicationPhone,
		})
	})
	require.NoError(t, err)

	found, err := NewAccountRepository(db).FindByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found.BuyerProfile)
	assert.Equal(t, "Kiosk", found.BuyerProfile.BusinessName)
}

func TestMarketRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	buyer := createAccount(t, db, "buyer@market.example")
	other := createAccount(t, db, "other@market.example")
	maize := createCrop(t, db, "maize")
	beans := createCrop(t, db, "beans")
	repo := NewMarketRepository(db)

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	loc := orb.Point{36.8333, -1.2833}
	wakulima := &entity.Market{
		BuyerID:      buyer.ID,
		Name:         "Wakulima",
		ContactEmail: "stalls@wakulima.example",
		ContactPhone: "+254700000009",
		MainCrops:    []*entity.Crop{maize, beans},
		Location:     &loc,
		CreatedAt:    base,
	}
	require.NoError(t, repo.Create(ctx, wakulima))
	require.NotEqual(t, uuid.Nil, wakulima.ID)

	kongowea := &entity.Market{
		BuyerID:      other.ID,
		Name:         "Kongowea",
		ContactEmail: "info@kongowea.example",
		ContactPhone: "+254700000010",
		MainCrops:    []*entity.Crop{maize},
		CreatedAt:    base.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, kongowea))

	found, err := repo.FindByID(ctx, wakulima.ID)
	require.NoError(t, err)
	require.Len(t, found.MainCrops, 2)
	assert.Equal(t, "beans", found.MainCrops[0].Slug)
	require.NotNil(t, found.Location)
	assert.InDelta(t, -1.2833, found.Location.Lat(), 1e-6)

	byMaize, err := repo.List(ctx, repository.MarketFilter{CropSlug: "maize"})
	require.NoError(t, err)
	require.Len(t, byMaize, 2)
	assert.Equal(t, kongowea.ID, byMaize[0].ID)
	assert.Equal(t, wakulima.ID, byMaize[1].ID)

	byBeans, err := repo.List(ctx, repository.MarketFilter{CropSlug: "beans"})
	require.NoError(t, err)
	require.Len(t, byBeans, 1)
	assert.Equal(t, wakulima.ID, byBeans[0].ID)

	mine, err := repo.List(ctx, repository.MarketFilter{BuyerID: other.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, kongowea.ID, mine[0].ID)
	assert.Nil(t, mine[0].Location)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMarketNotFound)
}
