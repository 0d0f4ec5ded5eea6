// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmlink/internal/delivery/http/middleware"
	"farmlink/internal/delivery/http/router/handler"
	"farmlink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProfileHandler  *handler.ProfileHandler
	CropHandler     *handler.CropHandler
	ProduceHandler  *handler.ProduceHandler
	FeedbackHandler *handler.FeedbackHandler
	MarketHandler   *handler.MarketHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	profileHandler  *handler.ProfileHandler
	cropHandler     *handler.CropHandler
	produceHandler  *handler.ProduceHandler
	feedbackHandler *handler.FeedbackHandler
	marketHandler   *handler.MarketHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		profileHandler:  params.ProfileHandler,
		cropHandler:     params.CropHandler,
		produceHandler:  params.ProduceHandler,
		feedbackHandler: params.FeedbackHandler,
		marketHandler:   params.MarketHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	// Accounts
	e.POST("/register", r.accountHandler.Register)
	e.POST("/auth/login", r.accountHandler.Login)

	meGroup := e.Group("/me", auth)
	{
		meGroup.GET("", r.accountHandler.GetMe)
		meGroup.PATCH("", r.accountHandler.UpdateMe)
	}

	// Profiles
	profileGroup := e.Group("/profiles", auth)
	{
		profileGroup.POST("/farmer", r.profileHandler.CreateFarmerProfile)
		profileGroup.GET("/farmer/me", r.profileHandler.GetFarmerProfile)
		profileGroup.PATCH("/farmer/me", r.profileHandler.UpdateFarmerProfile)
		profileGroup.GET("/farmer/me/qrcode", r.profileHandler.FarmerProfileQRCode)

		profileGroup.POST("/buyer", r.profileHandler.CreateBuyerProfile)
		profileGroup.GET("/buyer/me", r.profileHandler.GetBuyerProfile)
		profileGroup.PATCH("/buyer/me", r.profileHandler.UpdateBuyerProfile)
	}

	// Crop catalog: public reads, admin writes
	e.GET("/crops", r.cropHandler.ListCrops)
	e.GET("/crops/:slug", r.cropHandler.GetCrop)
	e.POST("/crops", r.cropHandler.CreateCrop, auth, r.authMiddleware.RequireRole(entity.RoleAdmin))

	// Produce listings
	e.GET("/produce", r.produceHandler.ListListings)
	e.GET("/produce/:id", r.produceHandler.GetListing)
	e.GET("/produce/:id/photo", r.produceHandler.GetPhoto)
	e.POST("/produce", r.produceHandler.CreateListing, auth)
	e.PATCH("/produce/:id/availability", r.produceHandler.SetAvailability, auth)
	e.PUT("/produce/:id/photo", r.produceHandler.UploadPhoto, auth)

	// Feedback
	e.POST("/feedback", r.feedbackHandler.SubmitFeedback, auth)
	e.GET("/accounts/:id/feedback", r.feedbackHandler.ListFeedback)

	// Markets: public reads, buyer writes (role checked against the stored account)
	e.GET("/markets", r.marketHandler.ListMarkets)
	e.GET("/markets/mine", r.marketHandler.ListMyMarkets, auth)
	e.GET("/markets/:id", r.marketHandler.GetMarket)
	e.POST("/markets", r.marketHandler.CreateMarket, auth)
}
