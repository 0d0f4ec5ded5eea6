package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/delivery/http/middleware"
	"farmlink/internal/delivery/http/response"
	"farmlink/internal/delivery/http/router"
	"farmlink/internal/delivery/http/router/handler"
	"farmlink/internal/domain/entity"
	"farmlink/internal/infra/auth"
	"farmlink/internal/infra/persistence/postgres"
	"farmlink/internal/infra/persistence/testdb"
	"farmlink/internal/infra/pubsub"
	"farmlink/internal/infra/qrcode"
	"farmlink/internal/infra/storage"
	"farmlink/internal/usecase"
	"farmlink/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// testAPI drives the full echo stack against a throwaway SQLite database.
type testAPI struct {
	e        *echo.Echo
	accounts usecase.AccountUsecase
}

type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db := testdb.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4, MinPassword: 8},
		Storage: &config.StorageConfig{BucketURL: "mem://", MaxPhotoBytes: 1 << 10},
		Produce: &config.ProduceConfig{DefaultRadiusKm: 25, MaxRadiusKm: 200},
	}
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.SecretKey.Access = "e2e-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	txManager := postgres.NewTransactionManager(db)
	accountRepo := postgres.NewAccountRepository(db)
	cropRepo := postgres.NewCropRepository(db)

	accounts := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	profiles := impl.NewProfileService(impl.ProfileServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		QRService:   qrcode.NewQRCodeService(cfg),
		Publisher:   pubsub.NewNoopPublisher(logger),
		Logger:      logger,
	})
	produce := impl.NewProduceService(impl.ProduceServiceParams{
		AccountRepo: accountRepo,
		CropRepo:    cropRepo,
		ProduceRepo: postgres.NewProduceRepository(db),
		Photos:      storage.NewBlobStorage(bucket),
		Config:      cfg,
		Logger:      logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AccountHandler:  handler.NewAccountHandler(accounts, logger),
		ProfileHandler:  handler.NewProfileHandler(profiles),
		CropHandler:     handler.NewCropHandler(impl.NewCropService(cropRepo, logger)),
		ProduceHandler:  handler.NewProduceHandler(produce),
		FeedbackHandler: handler.NewFeedbackHandler(impl.NewFeedbackService(txManager, logger)),
		MarketHandler: handler.NewMarketHandler(impl.NewMarketService(impl.MarketServiceParams{
			TxManager:  txManager,
			MarketRepo: postgres.NewMarketRepository(db),
			Logger:     logger,
		})),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})

	return &testAPI{e: e, accounts: accounts}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (a *testAPI) register(t *testing.T, email string) {
	t.Helper()

	rec, _ := a.do(t, http.MethodPost, "/register", "", map[string]string{
		"email": email, "password": "password1", "password2": "password1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (a *testAPI) login(t *testing.T, email, password string) string {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.AccessToken)

	return out.AccessToken
}

func (a *testAPI) farmer(t *testing.T, email string) string {
	t.Helper()

	a.register(t, email)
	token := a.login(t, email, "password1")
	rec, _ := a.do(t, http.MethodPost, "/profiles/farmer", token, map[string]any{"farm_size": 2.5})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return token
}

func (a *testAPI) admin(t *testing.T) string {
	t.Helper()

	_, err := a.accounts.CreateAdmin(context.Background(), &usecase.CreateAdminInput{Email: "root@farmlink.test", Password: "admin-pass"})
	require.NoError(t, err)

	return a.login(t, "root@farmlink.test", "admin-pass")
}

func (a *testAPI) crop(t *testing.T, adminToken, name string) entity.Crop {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/crops", adminToken, map[string]string{"name": name, "category": "vegetable"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var crop entity.Crop
	require.NoError(t, json.Unmarshal(env.Data, &crop))

	return crop
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec, env := api.do(t, http.MethodGet, "/health", "", nil)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_Register(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/register", "", map[string]string{
		"email": "Wanjiru@Example.com", "password": "password1", "password2": "password1", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var account entity.Account
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "wanjiru@example.com", account.Email)
	assert.Equal(t, entity.RoleGuest, account.Role)
	assert.NotContains(t, rec.Body.String(), "password")

	tests := []struct {
		name string
		body map[string]string
		code string
	}{
		{
			name: "duplicate email",
			body: map[string]string{"email": "wanjiru@example.com", "password": "password1", "password2": "password1"},
			code: "EMAIL_ALREADY_REGISTERED",
		},
		{
			name: "password mismatch",
			body: map[string]string{"email": "b@example.com", "password": "password1", "password2": "password2"},
			code: "VALIDATION_FAILED",
		},
		{
			name: "invalid email",
			body: map[string]string{"email": "not-an-email", "password": "password1", "password2": "password1"},
			code: "VALIDATION_FAILED",
		},
		{
			name: "invalid phone",
			body: map[string]string{"email": "c@example.com", "password": "password1", "password2": "password1", "phone_number": "12"},
			code: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := api.do(t, http.MethodPost, "/register", "", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAPI_LoginRejectsBadCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "a@example.com")

	rec, env := api.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@example.com", "password": "wrong-pass"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAPI_AuthenticationComesFirst(t *testing.T) {
	api := newTestAPI(t)

	// An invalid body still gets 401 when no credentials are sent.
	rec, env := api.do(t, http.MethodPost, "/profiles/farmer", "", map[string]any{"farm_size": -1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, _ = api.do(t, http.MethodGet, "/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_FarmerOnboarding(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "farmer@example.com")
	token := api.login(t, "farmer@example.com", "password1")

	rec, env := api.do(t, http.MethodPost, "/profiles/farmer", token, map[string]any{"farm_size": -3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = api.do(t, http.MethodGet, "/me", token, nil)
	assert.Contains(t, rec.Body.String(), `"role":"guest"`)

	rec, _ = api.do(t, http.MethodPost, "/profiles/farmer", token, map[string]any{
		"farm_size": 4, "expected_harvest_date": "2026-12-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = api.do(t, http.MethodPost, "/profiles/farmer", token, map[string]any{"farm_size": 4})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PROFILE_ALREADY_EXISTS", env.Error.Code)

	rec, env = api.do(t, http.MethodPost, "/profiles/buyer", token, map[string]any{
		"business_name": "Fresh Mart", "company_type": "supermarket", "delivery_address": "Moi Avenue",
		"contact_person": "Amina", "contact_phone": "+254700000001",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ROLE_TRANSITION_NOT_ALLOWED", env.Error.Code)

	rec, env = api.do(t, http.MethodGet, "/profiles/farmer/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		Role          entity.Role `json:"role"`
		FarmerProfile struct {
			FarmSize float64 `json:"farm_size"`
		} `json:"farmer_profile"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, entity.RoleFarmer, view.Role)
	assert.InDelta(t, 4, view.FarmerProfile.FarmSize, 0.001)

	rec, _ = api.do(t, http.MethodPatch, "/profiles/farmer/me", token, map[string]any{"farm_size": 6})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = api.do(t, http.MethodGet, "/profiles/farmer/me/qrcode", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec, env = api.do(t, http.MethodGet, "/profiles/buyer/me", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BUYER_PROFILE_NOT_FOUND", env.Error.Code)
}

func TestAPI_BuyerOnboarding(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "buyer@example.com")
	token := api.login(t, "buyer@example.com", "password1")

	rec, _ := api.do(t, http.MethodPost, "/profiles/buyer", token, map[string]any{
		"business_name": "Fresh Mart", "company_type": "supermarket", "delivery_address": "Moi Avenue",
		"contact_person": "Amina", "contact_phone": "+254700000001",
		"additional_addresses": []map[string]string{{"label": "Depot", "full_address": "Industrial Area"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = api.do(t, http.MethodPatch, "/profiles/buyer/me", token, map[string]any{"contact_phone": "bad"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.do(t, http.MethodPatch, "/profiles/buyer/me", token, map[string]any{"business_name": "Fresh Mart Ltd"})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Fresh Mart Ltd")

	rec, _ = api.do(t, http.MethodPatch, "/me", token, map[string]any{"preferred_language": "sw", "phone_number": "+254711111111"})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"role":"buyer"`)
}

func TestAPI_CropCatalog(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.admin(t)
	farmerToken := api.farmer(t, "farmer@example.com")

	rec, env := api.do(t, http.MethodPost, "/crops", farmerToken, map[string]string{"name": "Kale", "category": "vegetable"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	crop := api.crop(t, adminToken, "sweet potato")
	assert.Equal(t, "sweet-potato", crop.Slug)

	rec, env = api.do(t, http.MethodPost, "/crops", adminToken, map[string]string{"name": "Sweet Potato", "category": "tuber"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CROP_ALREADY_EXISTS", env.Error.Code)

	rec, _ = api.do(t, http.MethodGet, "/crops/sweet-potato", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(t, http.MethodGet, "/crops/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = api.do(t, http.MethodGet, "/crops", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var crops []entity.Crop
	require.NoError(t, json.Unmarshal(env.Data, &crops))
	assert.Len(t, crops, 1)
}

func TestAPI_ProduceListings(t *testing.T) {
	api := newTestAPI(t)
	crop := api.crop(t, api.admin(t), "Maize")
	farmerToken := api.farmer(t, "farmer@example.com")

	api.register(t, "guest@example.com")
	guestToken := api.login(t, "guest@example.com", "password1")

	listing := map[string]any{
		"crop_id": crop.ID, "variety": "H614", "quantity": 20, "unit": "bag", "quality": "top",
		"price": 3500, "available_from": "2026-11-01", "latitude": -1.2921, "longitude": 36.8219,
	}

	rec, _ := api.do(t, http.MethodPost, "/produce", guestToken, listing)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := api.do(t, http.MethodPost, "/produce", farmerToken, listing)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = api.do(t, http.MethodGet, "/produce?crop=maize&lat=-1.30&lng=36.80&radius_km=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var near []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &near))
	require.Len(t, near, 1)
	assert.Contains(t, near[0], "distance_km")

	rec, _ = api.do(t, http.MethodGet, "/produce?lat=-1.30", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.do(t, http.MethodPatch, "/produce/"+created.ID+"/availability", farmerToken, map[string]bool{"is_available": false})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env = api.do(t, http.MethodGet, "/produce", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(env.Data))

	rec, _ = api.do(t, http.MethodGet, "/produce/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_ProducePhoto(t *testing.T) {
	api := newTestAPI(t)
	crop := api.crop(t, api.admin(t), "Kale")
	farmerToken := api.farmer(t, "farmer@example.com")

	rec, env := api.do(t, http.MethodPost, "/produce", farmerToken, map[string]any{
		"crop_id": crop.ID, "variety": "Sukuma", "quantity": 5, "quality": "standard",
		"price": 50, "available_from": "2026-11-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	req := httptest.NewRequest(http.MethodPut, "/produce/"+created.ID+"/photo", bytes.NewReader(png))
	req.Header.Set(echo.HeaderContentType, "image/png")
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+farmerToken)
	rec = httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = api.do(t, http.MethodGet, "/produce/"+created.ID+"/photo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	req = httptest.NewRequest(http.MethodPut, "/produce/"+created.ID+"/photo", bytes.NewReader(bytes.Repeat([]byte("x"), 2048)))
	req.Header.Set(echo.HeaderContentType, "image/png")
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+farmerToken)
	rec = httptest.NewRecorder()
	api.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Feedback(t *testing.T) {
	api := newTestAPI(t)
	farmerToken := api.farmer(t, "farmer@example.com")

	rec, env := api.do(t, http.MethodGet, "/me", farmerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var farmer entity.Account
	require.NoError(t, json.Unmarshal(env.Data, &farmer))

	api.register(t, "buyer@example.com")
	buyerToken := api.login(t, "buyer@example.com", "password1")

	rec, _ = api.do(t, http.MethodPost, "/feedback", buyerToken, map[string]any{
		"reviewed_account_id": farmer.ID, "rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.do(t, http.MethodPost, "/feedback", buyerToken, map[string]any{
		"reviewed_account_id": farmer.ID, "rating": 5, "comment": "Fresh and on time",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = api.do(t, http.MethodGet, "/accounts/"+farmer.ID.String()+"/feedback", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var feedback []entity.Feedback
	require.NoError(t, json.Unmarshal(env.Data, &feedback))
	require.Len(t, feedback, 1)
	assert.Equal(t, 5, feedback[0].Rating)
}

func TestAPI_Markets(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.admin(t)
	maize := api.crop(t, adminToken, "Maize")
	beans := api.crop(t, adminToken, "Beans")
	farmerToken := api.farmer(t, "farmer@example.com")

	api.register(t, "buyer@example.com")
	buyerToken := api.login(t, "buyer@example.com", "password1")
	rec, _ := api.do(t, http.MethodPost, "/profiles/buyer", buyerToken, map[string]any{
		"business_name": "Fresh Mart", "company_type": "supermarket", "delivery_address": "Moi Avenue",
		"contact_person": "Amina", "contact_phone": "+254700000001",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	market := map[string]any{
		"name": "Wakulima Market", "contact_email": "Stalls@Wakulima.example", "contact_phone": "+254700000009",
		"main_crop_ids": []string{maize.ID.String()}, "latitude": -1.2833, "longitude": 36.8333,
	}

	rec, _ = api.do(t, http.MethodPost, "/markets", "", market)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = api.do(t, http.MethodPost, "/markets", farmerToken, market)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec, _ = api.do(t, http.MethodPost, "/markets", buyerToken, map[string]any{
		"name": strings.Repeat("m", 256), "contact_email": "stalls@wakulima.example", "contact_phone": "+254700000009",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := api.do(t, http.MethodPost, "/markets", buyerToken, market)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID             string        `json:"id"`
		ContactEmail   string        `json:"contact_email"`
		MainCrops      []entity.Crop `json:"main_crops"`
		GoogleMapsLink string        `json:"google_maps_link"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "stalls@wakulima.example", created.ContactEmail)
	require.Len(t, created.MainCrops, 1)
	assert.Equal(t, "maize", created.MainCrops[0].Slug)
	assert.Contains(t, created.GoogleMapsLink, "-1.2833")

	rec, env = api.do(t, http.MethodGet, "/markets?crop="+maize.Slug, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0]["id"])

	rec, env = api.do(t, http.MethodGet, "/markets?crop="+beans.Slug, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Empty(t, listed)

	rec, env = api.do(t, http.MethodGet, "/markets/mine", buyerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Len(t, listed, 1)

	rec, _ = api.do(t, http.MethodGet, "/markets/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(t, http.MethodGet, "/markets/0190f5c4-0000-7000-8000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
