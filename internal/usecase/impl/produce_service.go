package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"
	"farmlink/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const photoKeyPrefix = "produce_photos/"

type produceService struct {
	accountRepo     repository.AccountRepository
	cropRepo        repository.CropRepository
	produceRepo     repository.ProduceRepository
	photos          service.PhotoStorage
	defaultRadiusKm float64
	maxRadiusKm     float64
	maxPhotoBytes   int64
	logger          *slog.Logger
}

// ProduceServiceParams holds dependencies for ProduceService, injected by Fx.
type ProduceServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	CropRepo    repository.CropRepository
	ProduceRepo repository.ProduceRepository
	Photos      service.PhotoStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProduceService creates a new produce listing service.
func NewProduceService(params ProduceServiceParams) usecase.ProduceUsecase {
	srv := &produceService{
		accountRepo: params.AccountRepo,
		cropRepo:    params.CropRepo,
		produceRepo: params.ProduceRepo,
		photos:      params.Photos,
		logger:      params.Logger,
	}
	if params.Config.Produce != nil {
		srv.defaultRadiusKm = params.Config.Produce.DefaultRadiusKm
		srv.maxRadiusKm = params.Config.Produce.MaxRadiusKm
	}
	if params.Config.Storage != nil {
		srv.maxPhotoBytes = params.Config.Storage.MaxPhotoBytes
	}

	return srv
}

func (srv *produceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing stores a new listing for the caller, who must hold the farmer role.
func (srv *produceService) CreateListing(ctx context.Context, accountID uuid.UUID, input *usecase.CreateListingInput) (*usecase.ListingView, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}
	if account.Role != entity.RoleFarmer {
		return nil, domainerrors.ErrForbidden.WithDetails("only farmers can list produce")
	}

	crop, err := srv.cropRepo.FindByID(ctx, input.CropID)
	if errors.Is(err, domainerrors.ErrCropNotFound) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("crop does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get crop")
	}

	location, err := pointFrom(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	listing := &entity.ProduceListing{
		FarmerID:      account.ID,
		CropID:        crop.ID,
		Crop:          crop,
		Variety:       strings.TrimSpace(input.Variety),
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		Quality:       input.Quality,
		Price:         input.Price,
		AvailableFrom: input.AvailableFrom.Time,
		Description:   input.Description,
		Location:      location,
		IsAvailable:   true,
	}
	if err := listing.Validate(); err != nil {
		return nil, err
	}
	if err := srv.produceRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Produce listed",
		slog.String("listingID", listing.ID.String()),
		slog.String("farmerID", accountID.String()))

	return newListingView(listing, nil), nil
}

// ListListings returns available listings, newest first. With a location it keeps
// only listings inside the radius and reports their distance.
func (srv *produceService) ListListings(ctx context.Context, query *usecase.ListingQuery) ([]*usecase.ListingView, error) {
	listings, err := srv.produceRepo.ListAvailable(ctx, repository.ListingFilter{CropSlug: query.CropSlug})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list produce")
	}

	if query.Near == nil {
		views := make([]*usecase.ListingView, 0, len(listings))
		for _, l := range listings {
			views = append(views, newListingView(l, nil))
		}

		return views, nil
	}

	if err := entity.ValidateCoordinates(query.Near.Latitude, query.Near.Longitude); err != nil {
		return nil, err
	}
	radius, err := srv.radius(query.RadiusKm)
	if err != nil {
		return nil, err
	}

	origin := orb.Point{query.Near.Longitude, query.Near.Latitude}
	views := make([]*usecase.ListingView, 0, len(listings))
	for _, l := range listings {
		d, ok := l.DistanceKm(origin)
		if !ok || d > radius {
			continue
		}
		views = append(views, newListingView(l, &d))
	}

	return views, nil
}

func (srv *produceService) radius(requested float64) (float64, error) {
	switch {
	case !entity.IsFinite(requested):
		return 0, domainerrors.ErrValidationFailed.WithDetails("radius must be a finite number")
	case requested < 0:
		return 0, domainerrors.ErrValidationFailed.WithDetails("radius cannot be negative")
	case requested == 0:
		return srv.defaultRadiusKm, nil
	case srv.maxRadiusKm > 0 && requested > srv.maxRadiusKm:
		return 0, domainerrors.ErrValidationFailed.WithDetails(
			"radius cannot exceed " + strconv.FormatFloat(srv.maxRadiusKm, 'f', -1, 64) + " km")
	default:
		return requested, nil
	}
}

func (srv *produceService) GetListing(ctx context.Context, id uuid.UUID) (*usecase.ListingView, error) {
	listing, err := srv.produceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}

	return newListingView(listing, nil), nil
}

// SetAvailability opens or closes a listing. Only its owner may do so.
func (srv *produceService) SetAvailability(ctx context.Context, accountID, listingID uuid.UUID, available bool) (*usecase.ListingView, error) {
	listing, err := srv.ownedListing(ctx, accountID, listingID)
	if err != nil {
		return nil, err
	}

	listing.IsAvailable = available
	if err := srv.produceRepo.Update(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return newListingView(listing, nil), nil
}

// UploadPhoto stores the listing photo in the bucket and records its key.
func (srv *produceService) UploadPhoto(ctx context.Context, accountID, listingID uuid.UUID, input *usecase.UploadPhotoInput) (*usecase.ListingView, error) {
	listing, err := srv.ownedListing(ctx, accountID, listingID)
	if err != nil {
		return nil, err
	}

	if srv.maxPhotoBytes > 0 && input.Size > srv.maxPhotoBytes {
		return nil, photoTooLarge(srv.maxPhotoBytes)
	}

	body := input.Body
	if srv.maxPhotoBytes > 0 {
		body = io.LimitReader(body, srv.maxPhotoBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read photo")
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo is empty")
	}
	if srv.maxPhotoBytes > 0 && int64(len(data)) > srv.maxPhotoBytes {
		return nil, photoTooLarge(srv.maxPhotoBytes)
	}

	contentType := input.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("photo must be an image")
	}

	key := photoKeyPrefix + listing.ID.String()
	if err := srv.photos.Put(ctx, key, contentType, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	listing.PhotoKey = key
	if err := srv.produceRepo.Update(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	srv.log(ctx).Info("Listing photo stored",
		slog.String("listingID", listing.ID.String()),
		slog.Int("bytes", len(data)))

	return newListingView(listing, nil), nil
}

func (srv *produceService) OpenPhoto(ctx context.Context, listingID uuid.UUID) (io.ReadCloser, string, error) {
	listing, err := srv.produceRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get listing")
	}
	if listing.PhotoKey == "" {
		return nil, "", domainerrors.ErrNotFound.WithDetails("listing has no photo")
	}

	rc, contentType, err := srv.photos.Get(ctx, listing.PhotoKey)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open photo")
	}

	return rc, contentType, nil
}

func (srv *produceService) ownedListing(ctx context.Context, accountID, listingID uuid.UUID) (*entity.ProduceListing, error) {
	listing, err := srv.produceRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}
	if listing.FarmerID != accountID {
		return nil, domainerrors.ErrForbidden.WithDetails("only the listing owner can change it")
	}

	return listing, nil
}

// pointFrom builds a location from optional coordinates; both or neither must be set.
func pointFrom(lat, lng *float64) (*orb.Point, error) {
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil || lng == nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together")
	}

	return &orb.Point{*lng, *lat}, nil
}

func newListingView(l *entity.ProduceListing, distanceKm *float64) *usecase.ListingView {
	view := &usecase.ListingView{ProduceListing: l, DistanceKm: distanceKm}
	if l.Location != nil {
		lat, lng := l.Location.Lat(), l.Location.Lon()
		view.Latitude = &lat
		view.Longitude = &lng
	}

	return view
}

func photoTooLarge(limit int64) error {
	return domainerrors.ErrValidationFailed.WithDetails("photo exceeds " + util.HumanBytes(limit))
}
