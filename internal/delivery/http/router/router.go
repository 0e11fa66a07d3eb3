// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"confusion/internal/delivery/http/middleware"
	"confusion/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	DishHandler      *handler.DishHandler
	FavoriteHandler  *handler.FavoriteHandler
	PromotionHandler *handler.PromotionHandler
	LeaderHandler    *handler.LeaderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	dishHandler      *handler.DishHandler
	favoriteHandler  *handler.FavoriteHandler
	promotionHandler *handler.PromotionHandler
	leaderHandler    *handler.LeaderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		dishHandler:      params.DishHandler,
		favoriteHandler:  params.FavoriteHandler,
		promotionHandler: params.PromotionHandler,
		leaderHandler:    params.LeaderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Reads on the
// catalog are public; catalog writes require an administrator; comments and
// favorites require an authenticated user.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authed := r.authMiddleware.Authenticate
	admin := r.authMiddleware.RequireAdmin

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/logout", r.userHandler.Logout)
		userGroup.GET("/checkToken", r.userHandler.CheckToken)
		userGroup.GET("/google/token", r.userHandler.GoogleToken)
		userGroup.GET("", r.userHandler.ListUsers, authed, admin)
	}

	dishGroup := e.Group("/dishes")
	{
		dishGroup.GET("", r.dishHandler.ListDishes)
		dishGroup.GET("/:dishId", r.dishHandler.GetDish)
		dishGroup.POST("", r.dishHandler.CreateDish, authed, admin)
		dishGroup.PUT("", handler.OperationNotSupported, authed)
		dishGroup.PUT("/:dishId", r.dishHandler.UpdateDish, authed, admin)
		dishGroup.POST("/:dishId", handler.OperationNotSupported, authed)
		dishGroup.DELETE("/:dishId", r.dishHandler.DeleteDish, authed, admin)
		dishGroup.DELETE("", r.dishHandler.DeleteAllDishes, authed, admin)

		dishGroup.GET("/:dishId/comments", r.dishHandler.ListComments)
		dishGroup.GET("/:dishId/comments/:commentId", r.dishHandler.GetComment)
		dishGroup.POST("/:dishId/comments", r.dishHandler.AddComment, authed)
		dishGroup.PUT("/:dishId/comments", handler.OperationNotSupported, authed)
		dishGroup.PUT("/:dishId/comments/:commentId", r.dishHandler.UpdateComment, authed)
		dishGroup.POST("/:dishId/comments/:commentId", handler.OperationNotSupported, authed)
		dishGroup.DELETE("/:dishId/comments/:commentId", r.dishHandler.DeleteComment, authed)
		dishGroup.DELETE("/:dishId/comments", r.dishHandler.ClearComments, authed, admin)
	}

	promoGroup := e.Group("/promotions")
	{
		promoGroup.GET("", r.promotionHandler.ListPromotions)
		promoGroup.GET("/:promoId", r.promotionHandler.GetPromotion)
		promoGroup.POST("", r.promotionHandler.CreatePromotion, authed, admin)
		promoGroup.PUT("", handler.OperationNotSupported, authed)
		promoGroup.PUT("/:promoId", r.promotionHandler.UpdatePromotion, authed, admin)
		promoGroup.POST("/:promoId", handler.OperationNotSupported, authed)
		promoGroup.DELETE("/:promoId", r.promotionHandler.DeletePromotion, authed, admin)
		promoGroup.DELETE("", r.promotionHandler.DeleteAllPromotions, authed, admin)
	}

	leaderGroup := e.Group("/leaders")
	{
		leaderGroup.GET("", r.leaderHandler.ListLeaders)
		leaderGroup.GET("/:leaderId", r.leaderHandler.GetLeader)
		leaderGroup.POST("", r.leaderHandler.CreateLeader, authed, admin)
		leaderGroup.PUT("", handler.OperationNotSupported, authed)
		leaderGroup.PUT("/:leaderId", r.leaderHandler.UpdateLeader, authed, admin)
		leaderGroup.POST("/:leaderId", handler.OperationNotSupported, authed)
		leaderGroup.DELETE("/:leaderId", r.leaderHandler.DeleteLeader, authed, admin)
		leaderGroup.DELETE("", r.leaderHandler.DeleteAllLeaders, authed, admin)
	}

	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(authed)
	{
		favoriteGroup.GET("", r.favoriteHandler.GetFavorites)
		favoriteGroup.POST("", r.favoriteHandler.AddFavorites)
		favoriteGroup.PUT("", handler.OperationNotSupported)
		favoriteGroup.DELETE("", r.favoriteHandler.ClearFavorites)
		favoriteGroup.GET("/:dishId", r.favoriteHandler.CheckFavorite)
		favoriteGroup.POST("/:dishId", r.favoriteHandler.AddFavorite)
		favoriteGroup.PUT("/:dishId", handler.OperationNotSupported)
		favoriteGroup.DELETE("/:dishId", r.favoriteHandler.RemoveFavorite)
	}
}
