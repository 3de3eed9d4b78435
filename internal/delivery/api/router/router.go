// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router/handler"
	"market/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdvertisementHandler *handler.AdvertisementHandler
	ReferenceHandler     *handler.ReferenceHandler
	AttachmentHandler    *handler.AttachmentHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	advertisementHandler *handler.AdvertisementHandler
	referenceHandler     *handler.ReferenceHandler
	attachmentHandler    *handler.AttachmentHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		advertisementHandler: params.AdvertisementHandler,
		referenceHandler:     params.ReferenceHandler,
		attachmentHandler:    params.AttachmentHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored attachment files
	e.GET("/uploads/:filename", r.attachmentHandler.ServeAttachment)

	apiV1 := e.Group("/api/v1")

	// Public advertisement routes
	adsGroup := apiV1.Group("/advertisements")
	{
		adsGroup.GET("", r.advertisementHandler.SearchAdvertisements)
		adsGroup.GET("/:uuid", r.advertisementHandler.GetAdvertisement).Name = handler.RouteGetAdvertisement
		adsGroup.GET("/:uuid/qrcode", r.advertisementHandler.GetShareQRCode)
	}

	// Owner routes
	ownerGroup := apiV1.Group("/advertisements")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	{
		ownerGroup.POST("", r.advertisementHandler.CreateAdvertisement)
		ownerGroup.PUT("/:uuid", r.advertisementHandler.UpdateAdvertisement)
		ownerGroup.DELETE("/:uuid", r.advertisementHandler.DeleteAdvertisement)
	}

	meGroup := apiV1.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/advertisements", r.advertisementHandler.GetMyAdvertisements)
	}

	// Reference data for building advertisement forms
	refGroup := apiV1.Group("/reference")
	{
		refGroup.GET("/vehicle-types", r.referenceHandler.ListVehicleTypes)
		refGroup.GET("/fuel-types", r.referenceHandler.ListFuelTypes)
		refGroup.GET("/makes", r.referenceHandler.ListMakes)
		refGroup.GET("/makes/:id/models", r.referenceHandler.ListModels)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/advertisements", r.advertisementHandler.AdminSearchAdvertisements)
		adminGroup.GET("/advertisements/id/:id", r.advertisementHandler.AdminGetAdvertisement)
		adminGroup.DELETE("/advertisements/:uuid", r.advertisementHandler.AdminDeleteAdvertisement)
		adminGroup.PUT("/makes/:id", r.referenceHandler.RenameMake)
		adminGroup.DELETE("/makes/:id", r.referenceHandler.DeleteMake)
	}
}
