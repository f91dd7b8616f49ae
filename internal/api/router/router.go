package router

import (
	"kulina-go/internal/api/handler"
	"kulina-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	recipeHandler *handler.RecipeHandler,
	favoriteHandler *handler.FavoriteHandler,
	cartHandler *handler.CartHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	searchHandler *handler.SearchHandler,
) {
	// 短链接跳转，挂在根路径
	r.GET("/s/:code", recipeHandler.Resolve)

	api := r.Group("/api")

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 用户与订阅模块 ---
	users := api.Group("/users")
	{
		users.GET("/:id", middleware.OptionalAuth(), userHandler.GetUser)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.PUT("/me/avatar", userHandler.SetAvatar)
			usersAuth.DELETE("/me/avatar", userHandler.DeleteAvatar)

			usersAuth.POST("/:id/subscribe", subscriptionHandler.Subscribe)
			usersAuth.DELETE("/:id/subscribe", subscriptionHandler.Unsubscribe)
			usersAuth.GET("/me/subscriptions", subscriptionHandler.ListSubscriptions)

			usersAuth.GET("/me/favorites", favoriteHandler.ListMyFavorites)
			usersAuth.GET("/me/shopping_cart", cartHandler.ListMyCart)
			usersAuth.GET("/me/shopping_cart/download", cartHandler.DownloadShoppingList)
		}
	}

	// --- 目录模块（食材、标签）---
	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", catalogHandler.ListIngredients)
		ingredients.GET("/:id", catalogHandler.GetIngredient)
	}
	api.GET("/tags", catalogHandler.ListTags)

	// --- 菜谱模块 ---
	recipes := api.Group("/recipes")
	{
		// 公开接口（匿名可读，登录后附带个人状态）
		recipes.GET("", middleware.OptionalAuth(), recipeHandler.List)
		recipes.GET("/:id", middleware.OptionalAuth(), recipeHandler.Get)
		recipes.POST("/:id/get-link", recipeHandler.GetLink)

		recipesAuth := recipes.Group("", middleware.AuthRequired())
		{
			recipesAuth.POST("", recipeHandler.Create)
			recipesAuth.PUT("/:id", recipeHandler.Update)
			recipesAuth.DELETE("/:id", recipeHandler.Delete)
			recipesAuth.GET("/export", recipeHandler.Export)

			recipesAuth.POST("/:id/favorite", favoriteHandler.Favorite)
			recipesAuth.DELETE("/:id/favorite", favoriteHandler.Unfavorite)
			recipesAuth.POST("/:id/shopping_cart", cartHandler.AddToCart)
			recipesAuth.DELETE("/:id/shopping_cart", cartHandler.RemoveFromCart)
		}
	}

	// --- 搜索模块 ---
	search := api.Group("/search")
	{
		search.GET("/recipes", middleware.OptionalAuth(), searchHandler.SearchRecipes)
	}
}
