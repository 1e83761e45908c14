// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	BrandHandler    *handler.BrandHandler
	TagHandler      *handler.TagHandler
	UserHandler     *handler.UserHandler
	ArticleHandler  *handler.ArticleHandler
	SearchHandler   *handler.SearchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	brandHandler    *handler.BrandHandler
	tagHandler      *handler.TagHandler
	userHandler     *handler.UserHandler
	articleHandler  *handler.ArticleHandler
	searchHandler   *handler.SearchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		brandHandler:    params.BrandHandler,
		tagHandler:      params.TagHandler,
		userHandler:     params.UserHandler,
		articleHandler:  params.ArticleHandler,
		searchHandler:   params.SearchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.POST("/reindex", r.productHandler.Reindex)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/suggest", r.categoryHandler.Suggest)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.GET("/:id/products", r.categoryHandler.Products)
	}

	brandGroup := api.Group("/brands")
	{
		brandGroup.GET("", r.brandHandler.List)
		brandGroup.GET("/suggest", r.brandHandler.Suggest)
		brandGroup.GET("/:id", r.brandHandler.Get)
		brandGroup.GET("/:id/products", r.brandHandler.Products)
	}

	tagGroup := api.Group("/tags")
	{
		tagGroup.GET("", r.tagHandler.List)
		tagGroup.GET("/suggest", r.tagHandler.Suggest)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.POST("", r.userHandler.Create)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	articleGroup := api.Group("/articles")
	{
		articleGroup.GET("", r.articleHandler.List)
		articleGroup.POST("", r.articleHandler.Create)
		articleGroup.GET("/author/:authorId", r.articleHandler.ByAuthor)
		articleGroup.GET("/:id", r.articleHandler.Get)
		articleGroup.PUT("/:id", r.articleHandler.Update)
		articleGroup.DELETE("/:id", r.articleHandler.Delete)
	}

	api.GET("/search", r.searchHandler.Search)
}
