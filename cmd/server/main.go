package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nandhinijey/ClientFlow/internal/auth"
	"github.com/nandhinijey/ClientFlow/internal/config"
	"github.com/nandhinijey/ClientFlow/internal/handler"
	"github.com/nandhinijey/ClientFlow/internal/metrics"
	"github.com/nandhinijey/ClientFlow/internal/middleware"
	"github.com/nandhinijey/ClientFlow/internal/repository"
	"github.com/nandhinijey/ClientFlow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	authCfg, err := config.LoadAuthConfig()
	if err != nil {
		log.Fatalf("Failed to load auth config: %v", err)
	}

	srvCfg := config.LoadServerConfig()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	clientRepo := repository.NewClientRepository(dbPool)
	allowlistRepo := repository.NewAllowlistRepository(dbPool)

	// --- Initialize Services ---
	clientService := service.NewClientService(clientRepo)

	// --- Initialize Handlers ---
	clientHandler := handler.NewClientHandler(clientService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()
	router.Use(middleware.CORS(srvCfg.CORSOrigins))
	router.Use(metrics.Instrument())

	// --- Initialize Middlewares ---
	verifier := auth.NewSupabaseVerifier(*authCfg)
	authGate := middleware.AuthGate(verifier, allowlistRepo)

	// --- Register Routes ---
	apiGroup := router.Group("")
	clientHandler.RegisterClientRoutes(apiGroup, authGate)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + srvCfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", srvCfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
