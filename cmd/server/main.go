package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"estate-backend/internal/auth"
	"estate-backend/internal/cache"
	"estate-backend/internal/config"
	"estate-backend/internal/database"
	"estate-backend/internal/db"
	"estate-backend/internal/handlers"
	"estate-backend/internal/health"
	apihttp "estate-backend/internal/http"
	"estate-backend/internal/middleware"
	"estate-backend/internal/monitoring"
	"estate-backend/internal/repositories"
	"estate-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional: a failed cache falls back to Postgres-only serving
	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (serving without cache)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	tenantRepo := repositories.NewTenantRepository(pool)
	leaseRepo := repositories.NewLeaseRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	propertyService := services.NewPropertyService(propertyRepo)
	tenantService := services.NewTenantService(tenantRepo)
	leaseService := services.NewLeaseService(leaseRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	dashboardService := services.NewDashboardService(propertyRepo, paymentRepo)
	reportService := services.NewReportService(dashboardService)
	razorpayService := services.NewRazorpayService(
		cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.WebhookSecret,
		leaseRepo, paymentService,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	leaseHandler := handlers.NewLeaseHandler(leaseService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := apihttp.NewRouter(
		authHandler,
		userHandler,
		propertyHandler,
		tenantHandler,
		leaseHandler,
		paymentHandler,
		dashboardHandler,
		reportHandler,
		razorpayHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.CORS(cfg.Server.CorsAllowedOrigins)(router)

	if cfg.Monitoring.Enabled {
		go monitoring.NewMonitoringServer(pool, dashboardService, cfg.Monitoring.Port).Start()
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
