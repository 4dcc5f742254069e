package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"esthecrm-backend/config"
	"esthecrm-backend/controllers"
	"esthecrm-backend/store"
)

func SetupRouter(st store.Store, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	customerController := controllers.NewCustomerController(st)
	productController := controllers.NewProductController(st)
	purchaseController := controllers.NewPurchaseController(st)
	appointmentController := controllers.NewAppointmentController(st)
	financeController := controllers.NewFinanceController(st)
	dashboardController := controllers.NewDashboardController(st)

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.GET("/:id/summary", customerController.GetCustomerSummary)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.POST("", productController.CreateProduct)
			products.GET("", productController.GetProducts)
			products.GET("/:id", productController.GetProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		// Purchase routes
		purchases := api.Group("/purchases")
		{
			purchases.POST("", purchaseController.CreatePurchase)
			purchases.GET("", purchaseController.GetPurchases)
			purchases.GET("/:id", purchaseController.GetPurchase)
			purchases.PUT("/:id", purchaseController.UpdatePurchase)
			purchases.DELETE("/:id", purchaseController.DeletePurchase)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Finance routes
		finance := api.Group("/finance")
		{
			finance.POST("", financeController.CreateRecord)
			finance.GET("", financeController.GetRecords)
			finance.GET("/stats", financeController.GetMonthlyStats)
			finance.GET("/recent", financeController.GetRecentRecords)
			finance.PUT("/:id", financeController.UpdateRecord)
			finance.DELETE("/:id", financeController.DeleteRecord)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
