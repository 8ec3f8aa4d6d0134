// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quicksell/internal/delivery/http/middleware"
	"quicksell/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProfileHandler  *handler.ProfileHandler
	CategoryHandler *handler.CategoryHandler
	ListingHandler  *handler.ListingHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	profileHandler  *handler.ProfileHandler
	categoryHandler *handler.CategoryHandler
	listingHandler  *handler.ListingHandler
	chatHandler     *handler.ChatHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		profileHandler:  params.ProfileHandler,
		categoryHandler: params.CategoryHandler,
		listingHandler:  params.ListingHandler,
		chatHandler:     params.ChatHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	e.GET("/categories", r.categoryHandler.ListCategories)

	// Everything below requires an access token
	authenticate := r.authMiddleware.Authenticate

	e.GET("/account", r.accountHandler.GetAccount, authenticate)

	profileGroup := e.Group("/profiles", authenticate)
	{
		profileGroup.GET("/me", r.profileHandler.GetOwnProfile)
		profileGroup.PATCH("/me", r.profileHandler.UpdateOwnProfile)
		profileGroup.GET("/:uuid", r.profileHandler.GetProfile)
	}

	listingGroup := e.Group("/listings", authenticate)
	{
		listingGroup.GET("", r.listingHandler.ListListings)
		listingGroup.POST("", r.listingHandler.CreateListing)
		listingGroup.GET("/:uuid", r.listingHandler.GetListing)
		listingGroup.PATCH("/:uuid", r.listingHandler.UpdateListing)
		listingGroup.GET("/:uuid/qrcode", r.listingHandler.ListingQRCode)
	}

	chatGroup := e.Group("/chats", authenticate)
	{
		chatGroup.GET("", r.chatHandler.ListChats)
		chatGroup.POST("", r.chatHandler.CreateChat)
		chatGroup.GET("/:uuid", r.chatHandler.GetChat)
		chatGroup.GET("/:uuid/messages", r.chatHandler.ListMessages)
		chatGroup.POST("/:uuid/messages", r.chatHandler.SendMessage)
		chatGroup.POST("/:uuid/read", r.chatHandler.MarkRead)
	}
}
