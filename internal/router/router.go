package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/handler"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/infra"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/middleware"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/service"
)

// Deps are the infrastructure pieces built in main. Images and Mailer may be
// nil; the matching endpoints then answer with a configuration error.
type Deps struct {
	Store  *infra.Store
	Cache  *infra.CatalogCache
	Images service.ImageHost
	Mailer service.ContactSender
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store/Redis
func New(cfg *config.Config, d Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute).Middleware())

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	categorySvc := service.NewCategoryService(d.Store.Categories, d.Store.Products, d.Cache)
	productSvc := service.NewProductService(d.Store.Products, d.Store.Categories, d.Cache)
	imageSvc := service.NewImageService(d.Images, infra.NewCircuitBreaker(infra.DefaultImageHostBreaker()), cfg.UploadMaxBytes)
	contactSvc := service.NewContactService(d.Mailer)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg.Env == "production")
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	uploadH := handler.NewUploadHandler(imageSvc, cfg.UploadMaxBytes)
	contactH := handler.NewContactHandler(contactSvc)

	var cachePing handler.PingFunc
	if d.Cache != nil {
		cachePing = d.Cache.Ping
	}

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(d.Store.Ping, cachePing))
	r.GET("/categories", categoriesH.List)
	r.GET("/products", productsH.Catalog)
	r.POST("/contact", contactH.Submit)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/session", middleware.SessionAuth(authSvc), authH.Session)
	}

	// Admin writes
	admin := r.Group("", middleware.SessionAuth(authSvc))
	{
		admin.POST("/categories", categoriesH.Save)
		admin.DELETE("/categories", categoriesH.Delete)
		admin.POST("/products", productsH.Replace)
		admin.POST("/upload", uploadH.Upload)
		admin.DELETE("/upload", uploadH.Delete)
	}

	// Admin UI bundle, when this process serves it.
	if cfg.AdminStaticDir != "" {
		pages := r.Group("/admin", middleware.AdminPageGuard(authSvc))
		pages.StaticFS("/", http.Dir(cfg.AdminStaticDir))
	}

	// Swagger UI, only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
