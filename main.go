// @title Modeva Restaurant CMS API
// @version 1.0
// @description Customer intelligence for the restaurant admin dashboard
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	customer_cache "github.com/Modeva-Ecommerce/modeva-restaurant-cms/cache"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/config"
	_ "github.com/Modeva-Ecommerce/modeva-restaurant-cms/docs"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/middleware"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/realtime"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/routes/cms_routes"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	services.InitCustomerService(services.NewGormCustomerSource(config.DB))
	log.Println("✅ Customer service initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ✅ Change feeds: every signal drops the snapshot, the next read refetches
	invalidate := func(reason string) {
		customer_cache.Invalidate()
		log.Printf("[realtime] snapshot invalidated reason=%q", reason)
	}
	go realtime.NewPGListener(config.Pool, invalidate).Run(ctx)

	if kafkaSettings := config.LoadKafkaSettings(); kafkaSettings.Enabled() {
		kafkaListener := realtime.NewKafkaListener(kafkaSettings, invalidate)
		defer kafkaListener.Close()
		go kafkaListener.Run(ctx)
	} else {
		log.Println("⚠️ KAFKA_BROKERS not set, Kafka change feed disabled")
	}

	corsCfg := cors.Config{
		AllowOrigins:     config.CORSOrigins(),
		AllowMethods:     []string{"GET", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "Retry-After"},
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Register CMS routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupCustomerRoutes(adminGroup)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8081")
	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
}
