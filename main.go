package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Ruidozo/fam-backoffice/analytics"
	analyticsrepo "github.com/Ruidozo/fam-backoffice/analytics/repository"
	authrepo "github.com/Ruidozo/fam-backoffice/auth/repository"
	authsvc "github.com/Ruidozo/fam-backoffice/auth/service"
	"github.com/Ruidozo/fam-backoffice/config"
	customerrepo "github.com/Ruidozo/fam-backoffice/customer/repository"
	customersvc "github.com/Ruidozo/fam-backoffice/customer/service"
	api "github.com/Ruidozo/fam-backoffice/handler"
	"github.com/Ruidozo/fam-backoffice/middleware"
	orderrepo "github.com/Ruidozo/fam-backoffice/order/repository"
	ordersvc "github.com/Ruidozo/fam-backoffice/order/service"
	productrepo "github.com/Ruidozo/fam-backoffice/product/repository"
	productsvc "github.com/Ruidozo/fam-backoffice/product/service"
	"github.com/Ruidozo/fam-backoffice/production"
	productionrepo "github.com/Ruidozo/fam-backoffice/production/repository"
	"github.com/Ruidozo/fam-backoffice/realtime"
	recurringpkg "github.com/Ruidozo/fam-backoffice/recurring"
	recurringrepo "github.com/Ruidozo/fam-backoffice/recurring/repository"
	recurringsvc "github.com/Ruidozo/fam-backoffice/recurring/service"
	settingsrepo "github.com/Ruidozo/fam-backoffice/settings/repository"
	settingssvc "github.com/Ruidozo/fam-backoffice/settings/service"
	userrepo "github.com/Ruidozo/fam-backoffice/user/repository"
	usersvc "github.com/Ruidozo/fam-backoffice/user/service"
)

func pricingFromConfig(cfg config.RecurringConfig) recurringpkg.PricingStrategy {
	if cfg.PricingStrategy == "flat" {
		fee, err := decimal.NewFromString(cfg.MonthlyFee)
		if err != nil {
			log.Fatalf("config: invalid RECURRING_MONTHLY_FEE %q: %v", cfg.MonthlyFee, err)
		}
		return recurringpkg.FlatMonthlyPricing{Fee: fee}
	}
	return recurringpkg.PerDeliveryPricing{}
}

func main() {
	cfg := config.Load()
	db := setupDatabase(cfg.Database)
	seedDatabase(db)

	hub := realtime.NewHub()
	notifier := realtime.NewOrderNotifier(hub)

	// repositories + services
	productRepo := productrepo.NewGormProductRepo(db)
	productService := productsvc.NewProductService(productRepo)

	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)

	planRepo := recurringrepo.NewGormPlanRepo(db)
	planService := recurringsvc.NewPlanService(planRepo, productRepo, pricingFromConfig(cfg.Recurring))

	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo, productRepo).
		WithPaymentHook(planService).
		WithNotifier(notifier)

	analyticsService := analytics.NewService(analyticsrepo.NewGormAnalyticsRepo(db))
	productionService := production.NewService(productionrepo.NewGormProductionRepo(db))

	settingsService := settingssvc.NewSettingsService(settingsrepo.NewGormSettingsRepo(db))

	jwtTTL := time.Duration(cfg.Server.JWTExpirationHours) * time.Hour
	authService := authsvc.NewAuthService(authrepo.NewGormAuthRepo(db), cfg.Server.JWTSecret, jwtTTL)
	userService := usersvc.NewUserService(userrepo.NewGormUserRepo(db))

	// handlers
	authHandler := api.NewAuthHandler(authService)
	userHandler := api.NewUserHandler(userService)
	customerHandler := api.NewCustomerHandler(customerService)
	productHandler := api.NewProductHandler(productService)
	orderHandler := api.NewOrderHandler(orderService)
	planHandler := api.NewPlanHandler(planService)
	analyticsHandler := api.NewAnalyticsHandler(analyticsService, productionService)
	settingsHandler := api.NewSettingsHandler(settingsService)
	wsHandler := api.NewWSHandler(hub)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "ws_clients": hub.ClientCount()})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login())

	authed := v1.Group("")
	authed.Use(middleware.RequireAuth(cfg.Server.JWTSecret))
	{
		authed.GET("/auth/me", authHandler.Me())

		authed.GET("/customers", customerHandler.List())
		authed.POST("/customers", customerHandler.Create())
		authed.GET("/customers/:id", customerHandler.Get())
		authed.PUT("/customers/:id", customerHandler.Update())
		authed.DELETE("/customers/:id", customerHandler.Delete())

		authed.GET("/products", productHandler.List())
		authed.POST("/products", productHandler.Create())
		authed.GET("/products/:id", productHandler.Get())
		authed.PUT("/products/:id", productHandler.Update())
		authed.DELETE("/products/:id", productHandler.Delete())

		authed.GET("/orders", orderHandler.List())
		authed.POST("/orders", orderHandler.Create())
		authed.GET("/orders/:id", orderHandler.Get())
		authed.PUT("/orders/:id", orderHandler.Update())
		authed.DELETE("/orders/:id", orderHandler.Delete())
		authed.PATCH("/orders/:id/status", orderHandler.SetStatus())
		authed.GET("/orders/:id/history", orderHandler.History())

		authed.GET("/recurring-plans", planHandler.List())
		authed.POST("/recurring-plans", planHandler.Create())
		authed.GET("/recurring-plans/:id", planHandler.Get())
		authed.PUT("/recurring-plans/:id", planHandler.Update())
		authed.DELETE("/recurring-plans/:id", planHandler.Delete())
		authed.POST("/recurring-plans/:id/monthly-payment", planHandler.CreateMonthlyPayment())

		authed.GET("/analytics/dashboard", analyticsHandler.Dashboard())
		authed.GET("/analytics/inactive-customers", analyticsHandler.InactiveCustomers())
		authed.GET("/production/needs", analyticsHandler.ProductionNeeds())

		authed.GET("/settings", settingsHandler.Get())
		authed.GET("/settings/cutoff", settingsHandler.Cutoff())
		authed.PUT("/settings", middleware.RequireRoles("admin"), settingsHandler.Update())

		users := authed.Group("/users", middleware.RequireRoles("admin"))
		{
			users.GET("", userHandler.List())
			users.POST("", userHandler.Create())
			users.GET("/:id", userHandler.Get())
			users.PUT("/:id", userHandler.Update())
			users.DELETE("/:id", userHandler.Delete())
		}
	}

	r.GET("/ws/orders", middleware.RequireAuth(cfg.Server.JWTSecret), wsHandler.OrdersSocket())

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
