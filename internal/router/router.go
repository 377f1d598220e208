package router

import (
	"jolliville/internal/handlers"
	"jolliville/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	journalHandler := handlers.NewJournalHandler()
	villageHandler := handlers.NewVillageHandler()
	shopHandler := handlers.NewShopHandler()
	complaintHandler := handlers.NewComplaintHandler()
	friendHandler := handlers.NewFriendHandler()
	chatHandler := handlers.NewChatHandler()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Session-gated auth routes
	account := auth.Group("/")
	account.Use(middleware.AuthRequired())
	{
		account.GET("/me", authHandler.Me)
		account.POST("/update-points", authHandler.UpdatePoints)
		account.GET("/points", authHandler.PointLogs)
		account.POST("/update-profile", authHandler.UpdateProfile)
		account.POST("/avatar", authHandler.UploadAvatar)
		account.POST("/change-password", authHandler.ChangePassword)
		account.POST("/sync-password", authHandler.SyncPassword)
		account.POST("/delete-account", authHandler.DeleteAccount)
	}

	// Everything below requires a session
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/journal", journalHandler.Create)
		authorized.GET("/journal", journalHandler.List)
		authorized.GET("/journal/calendar", journalHandler.Calendar)
		authorized.GET("/journal/summary", journalHandler.Summary)
		authorized.GET("/journal/:id", journalHandler.Get)

		authorized.GET("/village", villageHandler.Get)
		authorized.PUT("/village/layout", villageHandler.Save)
		authorized.POST("/village/expand", villageHandler.Expand)

		authorized.GET("/shop/catalog", shopHandler.Catalog)
		authorized.GET("/shop/owned", shopHandler.Owned)
		authorized.POST("/shop/buy", shopHandler.Buy)
		authorized.POST("/shop/sell", shopHandler.Sell)
		authorized.GET("/shop/bundle", shopHandler.Bundle)
		authorized.POST("/shop/bundle/buy", shopHandler.BuyBundle)

		authorized.POST("/complaints/submit", complaintHandler.Submit)
		authorized.GET("/complaints", complaintHandler.ListMine)

		authorized.POST("/friends/:id", friendHandler.Follow)
		authorized.DELETE("/friends/:id", friendHandler.Unfollow)
		authorized.GET("/friends/following", friendHandler.Following)
		authorized.GET("/friends/followers", friendHandler.Followers)

		authorized.POST("/chat", chatHandler.Chat)
		authorized.GET("/chat/conversations", chatHandler.ListConversations)
		authorized.POST("/chat/conversations", chatHandler.CreateConversation)
		authorized.GET("/chat/conversations/:id/messages", chatHandler.Messages)
	}

	// Admin dashboard routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/complaints", complaintHandler.AdminList)
		admin.PUT("/complaints/:id", complaintHandler.AdminUpdate)
	}
}
