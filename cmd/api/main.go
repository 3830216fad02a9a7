package main

import (
	"log"
	"os"
	"time"

	"innkeeper/internal/analysis"
	"innkeeper/internal/auth"
	"innkeeper/internal/db"
	"innkeeper/internal/events"
	"innkeeper/internal/middleware"
	"innkeeper/internal/pricing"
	"innkeeper/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	settingsRepo := settings.NewPostgresRepository(pgDB)
	eventRepo := events.NewPostgresRepository(pgDB)
	analysisRepo := analysis.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	settingsService := settings.NewService(settingsRepo)
	eventService := events.NewService(eventRepo)
	analysisService := analysis.NewService(analysisRepo)

	// Pricing sessions pull baselines straight from the analysis service
	// unless an external analysis deployment is configured.
	var analysisClient pricing.AnalysisClient = analysisService
	if base := os.Getenv("ANALYSIS_BASE_URL"); base != "" {
		analysisClient = pricing.NewHTTPAnalysisClient(base)
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	settingsHandler := settings.NewHandler(settingsService)
	eventHandler := events.NewHandler(eventService)
	analysisHandler := analysis.NewHandler(analysisService)
	pricingHandler := pricing.NewHandler(eventService, settingsService, analysisClient)

	// ───────────────────────── EVENT ROUTES ─────────────────────────
	eventsGroup := r.Group("/events")
	eventsGroup.Use(middleware.AuthMiddleware())
	{
		eventsGroup.GET("", eventHandler.List)
		eventsGroup.GET("/:id", eventHandler.Get)
		eventsGroup.PATCH("/:id/price", eventHandler.ApplyPrice)
	}

	// ───────────────────────── PRICING ROUTES ─────────────────────────
	pricingGroup := r.Group("/pricing")
	pricingGroup.Use(middleware.AuthMiddleware())
	{
		pricingGroup.POST("/sessions", pricingHandler.CreateSession)
		pricingGroup.GET("/sessions/:id", pricingHandler.GetSession)
		pricingGroup.PATCH("/sessions/:id", pricingHandler.EditSession)
		pricingGroup.DELETE("/sessions/:id", pricingHandler.CloseSession)
		pricingGroup.POST("/estimate", pricingHandler.Estimate)
		pricingGroup.GET("/analysis", analysisHandler.Analysis)
	}

	// ───────────────────────── STATISTICS ─────────────────────────
	statsGroup := r.Group("/statistics")
	statsGroup.Use(middleware.AuthMiddleware())
	{
		statsGroup.GET("", analysisHandler.Statistics)
	}

	// ───────────────────────── SETTINGS ROUTES ─────────────────────────
	settingsGroup := r.Group("/settings")
	settingsGroup.Use(middleware.AuthMiddleware())
	{
		settingsGroup.GET("", settingsHandler.List)
		settingsGroup.GET("/values", settingsHandler.KeyValue)
		settingsGroup.GET("/:key", settingsHandler.Get)

		admin := settingsGroup.Group("")
		admin.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			admin.POST("", settingsHandler.Save)
			admin.PUT("/:key", settingsHandler.Update)
			admin.DELETE("/:key", settingsHandler.Delete)
		}
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
