package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Gothsec/centro-digital/config"
	dashboard_business "github.com/Gothsec/centro-digital/controllers/dashboard/business_controller"
	directory_business "github.com/Gothsec/centro-digital/controllers/directory/business_controller"
	"github.com/Gothsec/centro-digital/listing"
	"github.com/Gothsec/centro-digital/middleware"
	"github.com/Gothsec/centro-digital/routes/dashboard_routes"
	"github.com/Gothsec/centro-digital/routes/directory_routes"
	"github.com/Gothsec/centro-digital/services"
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

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	cloudinaryService, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// Initialize JWT Service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Build the listing subsystem: the store fetches the full collection
	// from Postgres, the favorites tracker persists its set in Redis.
	store := listing.NewStore(listing.NewDBSource(config.DB))
	favorites := listing.NewFavorites(listing.NewRedisFavoritesStore(config.RedisClient))
	favorites.Load(config.Ctx)

	directory_business.InitListing(store, favorites)
	directory_business.InitCloudinary(cloudinaryService)
	directory_business.InitGeocoding(services.NewGeocodingService())

	dashboard_business.InitListing(store)
	dashboard_business.InitCloudinary(cloudinaryService)
	log.Println("✅ Listing subsystem initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Public directory routes
	api := router.Group("/api/v1")
	directory_routes.SetupDirectoryRoutes(api)
	log.Println("✅ Directory routes registered")

	// Dashboard routes, rate limited
	adminAPI := router.Group("")
	adminAPI.Use(middleware.RateLimiter(100, time.Minute))
	dashboard_routes.SetupAdminRoutes(adminAPI)
	log.Println("✅ Dashboard routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8081")
	if err := router.Run(":8081"); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
