package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/config"
	"github.com/harsh12garg/Kirana-billing-software/internal/handler"
	"github.com/harsh12garg/Kirana-billing-software/internal/middleware"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

// Services bundles everything the router needs from the composition root.
type Services struct {
	Auth      service.AuthService
	Product   service.ProductService
	Customer  service.CustomerService
	Bill      service.BillService
	Credit    service.CreditService
	Settings  service.SettingsService
	Dashboard service.DashboardService
}

// New assembles the full HTTP surface: global middleware, public auth routes
// and the JWT-protected /api group.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, svcs Services) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute))

	authH := handler.NewAuthHandler(svcs.Auth)
	productH := handler.NewProductHandler(svcs.Product, rdb, cfg.UploadDir)
	customerH := handler.NewCustomerHandler(svcs.Customer)
	billH := handler.NewBillHandler(svcs.Bill)
	creditH := handler.NewCreditHandler(svcs.Credit)
	settingsH := handler.NewSettingsHandler(svcs.Settings, cfg.UploadDir)
	dashboardH := handler.NewDashboardHandler(svcs.Dashboard)
	healthH := handler.NewHealthHandler(db, rdb)

	r.GET("/health", healthH.Check)
	r.Static("/uploads", cfg.UploadDir)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		api.GET("/auth/me", authH.Me)

		products := api.Group("/products")
		{
			products.POST("", productH.Create)
			products.GET("", productH.List)
			products.GET("/barcode/:barcode", productH.GetByBarcode)
			products.GET("/:id", productH.GetByID)
			products.PUT("/:id", productH.Update)
			products.DELETE("/:id", productH.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", customerH.Create)
			customers.GET("", customerH.List)
			customers.GET("/:id", customerH.GetDetail)
			customers.PUT("/:id", customerH.Update)
		}

		bills := api.Group("/bills")
		{
			bills.POST("", billH.Create)
			bills.GET("", billH.List)
			bills.GET("/:id", billH.GetByID)
			bills.GET("/:id/receipt", billH.Receipt)
		}

		credits := api.Group("/credits")
		{
			credits.POST("", creditH.Create)
			credits.GET("", creditH.List)
			credits.PUT("/:id", creditH.Update)
		}

		api.GET("/settings", settingsH.Get)
		api.PUT("/settings", settingsH.Update)

		api.GET("/dashboard/stats", dashboardH.Stats)
	}

	return r
}
