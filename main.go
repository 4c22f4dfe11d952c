package main

import (
	"net/http"

	"gabeesh-social/config"
	"gabeesh-social/handlers"
	"gabeesh-social/helper"
	"gabeesh-social/logger"
	"gabeesh-social/middleware"
	"gabeesh-social/repositories"
	"gabeesh-social/services"
	"gabeesh-social/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := logger.Init(""); err != nil {
		panic(err)
	}

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file found")
	}

	// Initialize storage
	st, err := store.New(config.DataDir())
	if err != nil {
		logger.Errorf("Failed to open data directory: %v", err)
		return
	}
	if err := repositories.Seed(st); err != nil {
		logger.Errorf("Failed to seed collections: %v", err)
		return
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(st)
	announcementRepo := repositories.NewAnnouncementRepository(st)
	pollRepo := repositories.NewPollRepository(st)
	dictionaryRepo := repositories.NewDictionaryRepository(st)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	announcementService := services.NewAnnouncementService(announcementRepo, userRepo)
	pollService := services.NewPollService(pollRepo, userRepo)
	dictionaryService := services.NewDictionaryService(dictionaryRepo)

	// Initialize handlers
	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		logger.Errorf("Failed to build validator translations: %v", err)
		return
	}
	authHandler := handlers.NewAuthHandler(authService, userService, httpHelper)
	adminHandler := handlers.NewAdminHandler(userService, announcementService, pollService, httpHelper)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	pollHandler := handlers.NewPollHandler(pollService)
	dictionaryHandler := handlers.NewDictionaryHandler(dictionaryService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Public routes
	router.GET("/", authHandler.Index)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Authenticated routes
	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/dashboard", authHandler.Dashboard)
		authed.POST("/dashboard", authHandler.CreateMember)

		authed.GET("/announcements", announcementHandler.List)
		authed.GET("/polls", pollHandler.List)
		authed.POST("/polls", pollHandler.Vote)
		authed.GET("/dictionary", dictionaryHandler.List)
		authed.POST("/dictionary", dictionaryHandler.Add)

		// Mod/Leader
		mod := authed.Group("/")
		mod.Use(middleware.RequireModOrLeader())
		{
			mod.GET("/register", adminHandler.RegisterForm)
			mod.POST("/register", adminHandler.Register)
			mod.GET("/create-announcement", announcementHandler.CreateForm)
			mod.POST("/create-announcement", announcementHandler.Create)
			mod.GET("/create-poll", pollHandler.CreateForm)
			mod.POST("/create-poll", pollHandler.Create)
		}

		// Super-admin
		admin := authed.Group("/")
		admin.Use(middleware.RequireSuperAdmin())
		{
			admin.GET("/admin", adminHandler.ListUsers)
			admin.POST("/assign-role", adminHandler.AssignRole)
			admin.POST("/assign-vote", adminHandler.AssignVote)
			admin.POST("/mute-user", adminHandler.MuteUser)
			admin.POST("/unmute-user", adminHandler.UnmuteUser)
			admin.POST("/delete-user", adminHandler.DeleteUser)
			admin.POST("/reset-password", adminHandler.ResetPassword)

			admin.GET("/admin/content", adminHandler.Content)
			admin.POST("/delete-announcement", adminHandler.DeleteAnnouncement)
			admin.POST("/delete-poll", adminHandler.DeletePoll)
			admin.GET("/edit-poll/:id", adminHandler.GetPoll)
			admin.POST("/edit-poll/:id", adminHandler.EditPoll)
		}
	}

	port := config.Port()
	logger.Infof("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Errorf("Server stopped: %v", err)
	}
}
