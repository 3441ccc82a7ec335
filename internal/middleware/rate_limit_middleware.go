package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
)

const rateLimitRedisTimeout = 2 * time.Second

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests - максимальное количество запросов за Window
	MaxRequests int
	// Window - временное окно для подсчёта запросов
	Window time.Duration
	// KeyPrefix - префикс для ключей в Redis
	KeyPrefix string
}

// DefaultWriteRateLimitConfig - лимит по умолчанию для изменяющих запросов (создание и удаление вопросов)
func DefaultWriteRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 60,
		Window:      time.Minute,
		KeyPrefix:   "rl:write",
	}
}

// RateLimiter - счетчик запросов с фиксированным окном на основе Redis
type RateLimiter struct {
	redisClient redis.UniversalClient
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient) *RateLimiter {
	return &RateLimiter{redisClient: redisClient}
}

// Limit возвращает Gin middleware с заданной конфигурацией.
// Ключ формируется из IP + маршрута. При недоступном Redis запрос пропускается.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.MaxRequests <= 0 || cfg.Window <= 0 {
		def := DefaultWriteRateLimitConfig()
		if cfg.MaxRequests <= 0 {
			cfg.MaxRequests = def.MaxRequests
		}
		if cfg.Window <= 0 {
			cfg.Window = def.Window
		}
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultWriteRateLimitConfig().KeyPrefix
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		path := c.FullPath() // шаблон маршрута Gin, например "/questions/:id"
		if path == "" {
			path = c.Request.URL.Path
		}

		key := fmt.Sprintf("%s:%s:%s:%s", cfg.KeyPrefix, clientIP, c.Request.Method, path)

		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitRedisTimeout)
		defer cancel()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// fail-open
			log.Printf("[RateLimiter] Redis error for key %s: %v. Allowing request.", key, err)
			c.Next()
			return
		}

		// Первый запрос в окне - ставим TTL
		if count == 1 {
			if err := rl.redisClient.Expire(ctx, key, cfg.Window).Err(); err != nil {
				log.Printf("[RateLimiter] Failed to set TTL for key %s: %v", key, err)
			}
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		ttl, _ := rl.redisClient.TTL(ctx, key).Result()
		retryAfter := int(ttl.Seconds())
		if retryAfter <= 0 {
			retryAfter = int(cfg.Window.Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(retryAfter))

		if int(count) > cfg.MaxRequests {
			log.Printf("[RateLimiter] request_id=%s limit exceeded for IP=%s %s %s. Count=%d, Limit=%d",
				GetRequestID(c), clientIP, c.Request.Method, path, count, cfg.MaxRequests)

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(http.StatusTooManyRequests))
			return
		}

		c.Next()
	}
}
