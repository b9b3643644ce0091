package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/property-search/app/config"
	"github.com/property-search/app/controllers"
	"github.com/property-search/app/services"
	"github.com/property-search/internal/store"
	"github.com/property-search/routes"
)

func main() {
	// 1. Load configuration
	loadConfig()
	if err := config.Load("config/app.yaml"); err != nil {
		log.Printf("Warning: cannot read service config: %v", err)
	}

	// 2. Khởi tạo logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Property Search Service")

	// 3. Kết nối MongoDB
	mongoDB := initMongoDB(logger)
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting MongoDB", zap.Error(err))
		}
	}()

	// 4. Khởi tạo record store + resolve region column strategy.
	// Schema fact, check đúng một lần lúc startup.
	propertyStore := store.NewPropertyStore(mongoDB, config.C.Store.Collection, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := propertyStore.Resolve(ctx); err != nil {
		cancel()
		logger.Fatal("Failed to resolve record schema", zap.Error(err))
	}
	cancel()

	// 5. Khởi tạo cache services (LRU L1 + Redis L2, Redis optional)
	l1Size := getEnvInt("L1_CACHE_SIZE", config.C.Cache.L1Size)
	memoryCache, err := services.NewMemoryCacheService(l1Size, logger)
	if err != nil {
		logger.Fatal("Failed to initialize memory cache", zap.Error(err))
	}

	var redisCache *services.RedisCacheService
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisCache, err = services.NewRedisCacheService(redisURL, config.CacheTTL(), logger)
		if err != nil {
			logger.Warn("Redis unavailable, running with in-memory cache only", zap.Error(err))
			redisCache = nil
		}
	}
	cacheService := services.NewHybridCacheService(memoryCache, redisCache, logger)

	// 6. Khởi tạo services
	propertyService := services.NewPropertyService(propertyStore,
		config.C.Search.DefaultLimit, config.C.Search.MaxLimit, logger)
	facetService := services.NewFacetService(propertyStore, cacheService, logger)

	// 7. Khởi tạo controllers
	propertyController := controllers.NewPropertyController(propertyService, logger)
	facetController := controllers.NewFacetController(facetService, logger)

	// 8. Khởi tạo Gin router và routes
	router := gin.New()
	routes.SetupAllRoutes(router, propertyController, facetController)

	// 9. Khởi động server
	port := getEnv("APP_PORT", viper.GetString("app.port"))
	logger.Info("Property Search Service starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig load configuration từ file và env vars
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017/property_search")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger khởi tạo structured logger
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

// initMongoDB khởi tạo kết nối MongoDB
func initMongoDB(logger *zap.Logger) *mongo.Database {
	mongoURL := getEnv("MONGO_URL", viper.GetString("mongo.url"))

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	dbName := "property_search"
	clientOpts := options.Client().ApplyURI(mongoURL)
	if clientOpts.Auth != nil && clientOpts.Auth.AuthSource != "" {
		dbName = clientOpts.Auth.AuthSource
	}

	db := client.Database(dbName)
	logger.Info("Connected to MongoDB", zap.String("database", dbName))

	return db
}

// getEnv lấy environment variable với default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt lấy environment variable as int với default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
