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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/yourusername/trivia-questions/internal/config"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	"github.com/yourusername/trivia-questions/internal/handler"
	"github.com/yourusername/trivia-questions/internal/jobs"
	"github.com/yourusername/trivia-questions/internal/middleware"
	pgRepo "github.com/yourusername/trivia-questions/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-questions/internal/repository/redis"
	"github.com/yourusername/trivia-questions/internal/service"
	"github.com/yourusername/trivia-questions/internal/service/quizmanager"
	"github.com/yourusername/trivia-questions/pkg/database"
)

func main() {
	// .env необязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		log.Printf("Failed to get sql.DB: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него нет кэша категорий и rate limiting
	var redisClient redis.UniversalClient
	var cacheRepo repository.CacheRepository
	var healthCache handler.CachePinger
	if cfg.Redis.Enabled {
		redisClient, err = database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		redisCache, err := redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = redisCache
		healthCache = redisCache
	} else {
		log.Println("Redis отключен: кэш категорий и rate limiting не используются")
	}

	// Репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoriesTTL)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo, quizmanager.NewSelector())

	// Фоновые задачи
	scheduler := jobs.NewScheduler()
	if cacheRepo != nil {
		if _, err := scheduler.RegisterCategoryCacheWarmup(cfg.Jobs.CategoryCacheSpec, categoryService); err != nil {
			log.Printf("Failed to schedule category cache warmup: %v", err)
			os.Exit(1)
		}
		jobs.CategoryCacheWarmup(categoryService)()
	}
	scheduler.Start()

	// Роутер
	engine := gin.New()
	engine.Use(gin.Logger(), middleware.RequestID(), middleware.Recovery())

	if gin.Mode() == gin.ReleaseMode {
		if err := engine.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else if err := engine.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	engine.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))

	router := &handler.Router{
		Questions: handler.NewQuestionHandler(questionService),
		Category:  handler.NewCategoryHandler(categoryService),
		Quiz:      handler.NewQuizHandler(quizService),
		Health:    handler.NewHealthHandler(sqlDB, healthCache),
	}
	if redisClient != nil && cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(redisClient)
		router.WriteLimit = limiter.Limit(middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
			KeyPrefix:   "rl:write",
		})
	}
	router.Register(engine)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	<-scheduler.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited properly")
}

// corsConfig собирает настройки CORS; "*" в списке разрешает любой источник
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
