package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Jobs      JobsConfig      `mapstructure:"jobs"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // секунды
	WriteTimeout int    `mapstructure:"write_timeout"` // секунды
	// CORSOrigins: разрешенные источники; "*" разрешает все
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxOpenConns int `mapstructure:"max_open_conns"`
	MaxIdleConns int `mapstructure:"max_idle_conns"`

	// LogLevel: уровень логгера GORM (silent, error, warn, info)
	LogLevel string `mapstructure:"log_level"`

	// MigrationsPath: источник миграций для golang-migrate
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Enabled: без Redis кэш категорий, rate limiting и фоновая задача отключаются
	Enabled bool `mapstructure:"enabled"`

	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	Addrs []string `mapstructure:"addrs"`

	// Addr: адрес для режима 'single', если Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - без ретраев).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff, MaxRetryBackoff: интервалы между попытками в миллисекундах
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// CacheConfig содержит настройки кэша
type CacheConfig struct {
	CategoriesTTL time.Duration `mapstructure:"categories_ttl"`
}

// RateLimitConfig содержит настройки ограничения изменяющих запросов
type RateLimitConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

// JobsConfig содержит расписания фоновых задач (формат robfig/cron)
type JobsConfig struct {
	CategoryCacheSpec string `mapstructure:"category_cache_spec"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 15)
	vip.SetDefault("server.write_timeout", 30)
	vip.SetDefault("server.cors_origins", []string{"*"})

	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.max_open_conns", 25)
	vip.SetDefault("database.max_idle_conns", 10)
	vip.SetDefault("database.log_level", "warn")
	vip.SetDefault("database.migrations_path", "file://migrations")

	vip.SetDefault("redis.enabled", false)
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.addr", "localhost:6379")

	vip.SetDefault("cache.categories_ttl", "10m")

	vip.SetDefault("rate_limit.enabled", true)
	vip.SetDefault("rate_limit.max_requests", 60)
	vip.SetDefault("rate_limit.window", "1m")

	vip.SetDefault("jobs.category_cache_spec", "@every 10m")
}

func bindEnv(vip *viper.Viper) {
	// Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	vip.BindEnv("server.cors_origins", "CORS_ORIGINS")

	// Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.max_open_conns", "DATABASE_MAX_OPEN_CONNS")
	vip.BindEnv("database.max_idle_conns", "DATABASE_MAX_IDLE_CONNS")
	vip.BindEnv("database.log_level", "DATABASE_LOG_LEVEL")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	// Redis
	vip.BindEnv("redis.enabled", "REDIS_ENABLED")
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS") // Для массива строк
	vip.BindEnv("redis.addr", "REDIS_ADDR")   // Для одиночной строки
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("cache.categories_ttl", "CACHE_CATEGORIES_TTL")

	vip.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")

	vip.BindEnv("jobs.category_cache_spec", "JOBS_CATEGORY_CACHE_SPEC")
}

// Load загружает конфигурацию из файла и переменных окружения.
// Отсутствующий файл не ошибка: значения берутся из окружения и умолчаний.
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, без глобального состояния

	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				log.Printf("[Config] Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("[Config] Database: %s@%s:%s/%s (sslmode=%s)",
			cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.SSLMode)
		log.Printf("[Config] Redis enabled: %t, mode: %s", cfg.Redis.Enabled, cfg.Redis.Mode)
		log.Printf("[Config] Server port: %s", cfg.Server.Port)
	}

	if err := cfg.Validate(os.Getenv("GIN_MODE")); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры. ginMode - значение GIN_MODE.
func (c *Config) Validate(ginMode string) error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	// Вне режима разработки пароль БД обязателен
	if ginMode != "debug" && c.Database.Password == "" {
		return fmt.Errorf("database password is required in production mode (check DATABASE_PASSWORD env var)")
	}
	if c.Redis.Enabled && len(c.Redis.Addrs) == 0 && c.Redis.Addr == "" {
		return fmt.Errorf("redis is enabled but neither REDIS_ADDRS nor REDIS_ADDR is set")
	}
	if c.RateLimit.Enabled && (c.RateLimit.MaxRequests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit.max_requests and rate_limit.window must be positive")
	}
	return nil
}
