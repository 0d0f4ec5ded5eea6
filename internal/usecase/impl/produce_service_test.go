package impl

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	mockRepo "farmlink/internal/mocks/repository"
	mockSvc "farmlink/internal/mocks/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type produceServiceFixtures struct {
	service     usecase.ProduceUsecase
	accountRepo *mockRepo.MockAccountRepository
	cropRepo    *mockRepo.MockCropRepository
	produceRepo *mockRepo.MockProduceRepository
	photos      *mockSvc.MockPhotoStorage
}

func createTestProduceService(t *testing.T) produceServiceFixtures {
	fx := produceServiceFixtures{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		cropRepo:    mockRepo.NewMockCropRepository(t),
		produceRepo: mockRepo.NewMockProduceRepository(t),
		photos:      mockSvc.NewMockPhotoStorage(t),
	}
	fx.service = NewProduceService(ProduceServiceParams{
		AccountRepo: fx.accountRepo,
		CropRepo:    fx.cropRepo,
		ProduceRepo: fx.produceRepo,
		Photos:      fx.photos,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func ptr[T any](v T) *T {
	return &v
}

func validListingInput(cropID uuid.UUID) *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		CropID:        cropID,
		Variety:       "H614",
		Quantity:      10,
		Unit:          entity.ProduceUnitBag,
		Quality:       entity.ProduceQualityTop,
		Price:         3500,
		AvailableFrom: usecase.Date{Time: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestProduceService_CreateListing(t *testing.T) {
	fx := createTestProduceService(t)

	ctx := context.Background()
	farmer := &entity.Account{ID: uuid.Must(uuid.NewV7()), Role: entity.RoleFarmer}
	crop := &entity.Crop{ID: uuid.Must(uuid.NewV7()), Name: "Maize", Slug: "maize"}

	fx.accountRepo.EXPECT().FindByID(ctx, farmer.ID).Return(farmer, nil)
	fx.cropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)
	fx.produceRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.ProduceListing) bool {
			return l.FarmerID == farmer.ID && l.IsAvailable && l.Location != nil
		})).
		Return(nil)

	input := validListingInput(crop.ID)
	input.Latitude = ptr(-0.0917)
	input.Longitude = ptr(34.7680)

	view, err := fx.service.CreateListing(ctx, farmer.ID, input)

	require.NoError(t, err)
	require.NotNil(t, view.Latitude)
	assert.InDelta(t, -0.0917, *view.Latitude, 1e-9)
	assert.InDelta(t, 34.7680, *view.Longitude, 1e-9)
	assert.Nil(t, view.DistanceKm)
}

func TestProduceService_CreateListing_Rejections(t *testing.T) {
	crop := &entity.Crop{ID: uuid.Must(uuid.NewV7())}

	t.Run("caller is not a farmer", func(t *testing.T) {
		fx := createTestProduceService(t)
		buyer := &entity.Account{ID: uuid.Must(uuid.NewV7()), Role: entity.RoleBuyer}
		fx.accountRepo.EXPECT().FindByID(mock.Anything, buyer.ID).Return(buyer, nil)

		_, err := fx.service.CreateListing(context.Background(), buyer.ID, validListingInput(crop.ID))

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown crop", func(t *testing.T) {
		fx := createTestProduceService(t)
		farmer := &entity.Account{ID: uuid.Must(uuid.NewV7()), Role: entity.RoleFarmer}
		fx.accountRepo.EXPECT().FindByID(mock.Anything, farmer.ID).Return(farmer, nil)
		fx.cropRepo.EXPECT().FindByID(mock.Anything, crop.ID).Return(nil, domainerrors.ErrCropNotFound)

		_, err := fx.service.CreateListing(context.Background(), farmer.ID, validListingInput(crop.ID))

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		fx := createTestProduceService(t)
		farmer := &entity.Account{ID: uuid.Must(uuid.NewV7()), Role: entity.RoleFarmer}
		fx.accountRepo.EXPECT().FindByID(mock.Anything, farmer.ID).Return(farmer, nil)
		fx.cropRepo.EXPECT().FindByID(mock.Anything, crop.ID).Return(crop, nil)

		input := validListingInput(crop.ID)
		input.Latitude = ptr(-1.0)

		_, err := fx.service.CreateListing(context.Background(), farmer.ID, input)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		fx.produceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProduceService_ListListings_Radius(t *testing.T) {
	nairobi := orb.Point{36.8219, -1.2921}
	kisumu := orb.Point{34.7680, -0.0917}
	listings := []*entity.ProduceListing{
		{ID: uuid.Must(uuid.NewV7()), Location: &nairobi},
		{ID: uuid.Must(uuid.NewV7()), Location: &kisumu},
		{ID: uuid.Must(uuid.NewV7())},
	}

	tests := []struct {
		name    string
		near    *usecase.Coordinates
		radius  float64
		wantLen int
		wantErr bool
	}{
		{name: "default radius keeps the nearby listing", radius: 0, wantLen: 1},
		{name: "maximum radius still excludes kisumu", radius: 200, wantLen: 1},
		{name: "radius above maximum", radius: 201, wantErr: true},
		{name: "negative radius", radius: -1, wantErr: true},
		{name: "NaN radius", radius: math.NaN(), wantErr: true},
		{name: "infinite radius", radius: math.Inf(1), wantErr: true},
		{name: "NaN latitude", near: &usecase.Coordinates{Latitude: math.NaN(), Longitude: 36.80}, wantErr: true},
		{name: "infinite longitude", near: &usecase.Coordinates{Latitude: -1.30, Longitude: math.Inf(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProduceService(t)
			fx.produceRepo.EXPECT().
				ListAvailable(mock.Anything, repository.ListingFilter{CropSlug: "maize"}).
				Return(listings, nil)

			near := tt.near
			if near == nil {
				near = &usecase.Coordinates{Latitude: -1.30, Longitude: 36.80}
			}

			views, err := fx.service.ListListings(context.Background(), &usecase.ListingQuery{
				CropSlug: "maize",
				Near:     near,
				RadiusKm: tt.radius,
			})

			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			require.Len(t, views, tt.wantLen)
			assert.Equal(t, listings[0].ID, views[0].ID)
			require.NotNil(t, views[0].DistanceKm)
			assert.Less(t, *views[0].DistanceKm, 5.0)
		})
	}
}

func TestProduceService_ListListings_WithoutLocation(t *testing.T) {
	fx := createTestProduceService(t)
	fx.produceRepo.EXPECT().ListAvailable(mock.Anything, repository.ListingFilter{}).Return(nil, nil)

	views, err := fx.service.ListListings(context.Background(), &usecase.ListingQuery{})

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestProduceService_SetAvailability_NotOwner(t *testing.T) {
	fx := createTestProduceService(t)

	listing := &entity.ProduceListing{ID: uuid.Must(uuid.NewV7()), FarmerID: uuid.Must(uuid.NewV7())}
	fx.produceRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)

	_, err := fx.service.SetAvailability(context.Background(), uuid.Must(uuid.NewV7()), listing.ID, false)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.produceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProduceService_UploadPhoto(t *testing.T) {
	owner := uuid.Must(uuid.NewV7())
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

	t.Run("stores detected image type", func(t *testing.T) {
		fx := createTestProduceService(t)
		listing := &entity.ProduceListing{ID: uuid.Must(uuid.NewV7()), FarmerID: owner}
		fx.produceRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)
		fx.photos.EXPECT().Put(mock.Anything, "produce_photos/"+listing.ID.String(), "image/png", mock.Anything).Return(nil)
		fx.produceRepo.EXPECT().Update(mock.Anything, listing).Return(nil)

		view, err := fx.service.UploadPhoto(context.Background(), owner, listing.ID, &usecase.UploadPhotoInput{
			Body: bytes.NewReader(png),
			Size: int64(len(png)),
		})

		require.NoError(t, err)
		assert.Equal(t, "produce_photos/"+listing.ID.String(), view.PhotoKey)
	})

	t.Run("rejects non images", func(t *testing.T) {
		fx := createTestProduceService(t)
		listing := &entity.ProduceListing{ID: uuid.Must(uuid.NewV7()), FarmerID: owner}
		fx.produceRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)

		_, err := fx.service.UploadPhoto(context.Background(), owner, listing.ID, &usecase.UploadPhotoInput{
			ContentType: "text/plain",
			Body:        bytes.NewReader([]byte("hello")),
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects oversized bodies without a declared size", func(t *testing.T) {
		fx := createTestProduceService(t)
		listing := &entity.ProduceListing{ID: uuid.Must(uuid.NewV7()), FarmerID: owner}
		fx.produceRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)

		_, err := fx.service.UploadPhoto(context.Background(), owner, listing.ID, &usecase.UploadPhotoInput{
			ContentType: "image/png",
			Size:        -1,
			Body:        bytes.NewReader(make([]byte, 2048)),
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "1 KB")
	})
}

func TestProduceService_OpenPhoto_NoPhoto(t *testing.T) {
	fx := createTestProduceService(t)

	listing := &entity.ProduceListing{ID: uuid.Must(uuid.NewV7())}
	fx.produceRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)

	_, _, err := fx.service.OpenPhoto(context.Background(), listing.ID)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
