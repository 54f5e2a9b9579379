// File: /routes/routes.go
package routes

import (
	"net/http"

	"automanager-api/config"
	"automanager-api/controllers"
	"automanager-api/middleware"
	"automanager-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Services
	saleService := services.NewSaleService(db, emailService)
	statsService := services.NewStatsService(db)
	fipeService := services.NewFipeService(cfg.FipeBaseURL)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	personController := controllers.NewPersonController(db)
	vehicleController := controllers.NewVehicleController(db, saleService, statsService)
	expenseController := controllers.NewExpenseController(db)
	storeExpenseController := controllers.NewStoreExpenseController(db)
	intermediaryController := controllers.NewIntermediaryController(db)
	dashboardController := controllers.NewDashboardController(statsService)
	imageController := controllers.NewImageController(db, cfg.UploadDir)
	fipeController := controllers.NewFipeController(fipeService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Profile routes
		users := protected.Group("/users")
		{
			users.GET("/profile", authController.GetProfile)
			users.PUT("/password", authController.ChangePassword)
		}

		// People routes
		people := protected.Group("/people")
		{
			people.GET("/", personController.GetPeople)
			people.GET("/search-by-document", personController.SearchByDocument)
			people.GET("/:id", personController.GetPerson)
			people.POST("/", personController.CreatePerson)
			people.PUT("/:id", personController.UpdatePerson)
			people.DELETE("/:id", personController.DeletePerson)
		}

		// Vehicle routes
		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("/", vehicleController.GetVehicles)
			vehicles.POST("/", vehicleController.CreateVehicle)
			vehicles.GET("/:id", vehicleController.GetVehicle)
			vehicles.PUT("/:id", vehicleController.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleController.DeleteVehicle)
			vehicles.POST("/:id/sell", vehicleController.SellVehicle)
			vehicles.GET("/:id/profit", vehicleController.GetVehicleProfit)
			vehicles.GET("/:id/expenses", expenseController.GetExpensesByVehicle)
			vehicles.GET("/:id/images", imageController.GetVehicleImages)
			vehicles.POST("/:id/images", imageController.UploadVehicleImages)
			vehicles.DELETE("/:id/images", imageController.DeleteAllVehicleImages)
		}

		// Expense routes
		expenses := protected.Group("/expenses")
		{
			expenses.POST("/", expenseController.CreateExpense)
			expenses.DELETE("/:id", expenseController.DeleteExpense)
		}

		// Store expense routes
		storeExpenses := protected.Group("/store-expenses")
		{
			storeExpenses.GET("/", storeExpenseController.GetStoreExpenses)
			storeExpenses.POST("/", storeExpenseController.CreateStoreExpense)
			storeExpenses.DELETE("/:id", storeExpenseController.DeleteStoreExpense)
		}

		// Intermediary routes
		intermediaries := protected.Group("/intermediaries")
		{
			intermediaries.GET("/", intermediaryController.GetIntermediaries)
			intermediaries.POST("/", intermediaryController.CreateIntermediary)
			intermediaries.GET("/:id", intermediaryController.GetIntermediary)
			intermediaries.PUT("/:id", intermediaryController.UpdateIntermediary)
			intermediaries.DELETE("/:id", intermediaryController.DeleteIntermediary)
		}

		// Dashboard routes
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.GetStats)
			dashboard.GET("/net-profit", dashboardController.GetNetProfit)
		}

		// FIPE price reference routes
		fipe := protected.Group("/fipe")
		{
			fipe.GET("/:vehicleType/brands", fipeController.GetBrands)
			fipe.GET("/:vehicleType/brands/:brandId/models", fipeController.GetModels)
			fipe.GET("/:vehicleType/brands/:brandId/models/:modelId/years", fipeController.GetYears)
			fipe.GET("/:vehicleType/brands/:brandId/models/:modelId/years/:yearId", fipeController.GetPrice)
		}

		// Uploaded vehicle photos
		protected.GET("/uploads/:filename", imageController.ServeImage)

		// Image record deletion
		protected.DELETE("/vehicle-images/:id", imageController.DeleteImage)
	}
}

// SetupCORS configures cross-origin access for the SPA frontend
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
