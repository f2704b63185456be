package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jilpatel7/Tiffin-Finder/internal/db"
	"github.com/jilpatel7/Tiffin-Finder/internal/middleware"
	"github.com/jilpatel7/Tiffin-Finder/internal/provider"
	"github.com/jilpatel7/Tiffin-Finder/internal/registration"
	"github.com/jilpatel7/Tiffin-Finder/internal/search"
	"github.com/jilpatel7/Tiffin-Finder/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
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

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	providerRepo := provider.NewPostgresRepository(pgDB)
	providerService := provider.NewService(providerRepo, r2Client)

	// ───────────────────────── HANDLERS ─────────────────────────
	providerHandler := provider.NewHandler(providerService)
	searchHandler := search.NewHandler(providerService)
	registrationHandler := registration.NewHandler(providerService)

	// ───────────────────────── ROUTES ─────────────────────────
	r.GET("/search", searchHandler.Search)

	providerGroup := r.Group("/providers")
	{
		providerGroup.GET("", providerHandler.ListProviders)
		providerGroup.GET("/:id", providerHandler.GetProvider)
		providerGroup.POST("/:id/testimonials", providerHandler.AddTestimonial)
		providerGroup.POST("/:id/gallery", providerHandler.UploadGallery)
	}

	metaGroup := r.Group("/meta")
	{
		metaGroup.GET("/areas", providerHandler.ListAreas)
		metaGroup.GET("/cuisines", providerHandler.ListCuisines)
	}

	registerGroup := r.Group("/register")
	{
		registerGroup.GET("/options", registrationHandler.Options)
		registerGroup.POST("/validate", registrationHandler.ValidateStep)
		registerGroup.POST("", registrationHandler.Register)
	}

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 TiffinFind API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
