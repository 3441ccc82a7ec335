package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// defaultOpTimeout ограничивает каждую операцию с Redis, чтобы недоступный кеш не подвешивал запрос
const defaultOpTimeout = 2 * time.Second

// CacheRepo реализует repository.CacheRepository
type CacheRepo struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// NewCacheRepo создает новый репозиторий кеша и возвращает ошибку при проблемах
func NewCacheRepo(client redis.UniversalClient) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("Redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{
		client:  client,
		timeout: defaultOpTimeout,
	}, nil
}

func (r *CacheRepo) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// SetJSON сохраняет структуру JSON в кеше
func (r *CacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := r.opContext()
	defer cancel()
	return r.client.Set(ctx, key, data, expiration).Err()
}

// GetJSON получает структуру JSON из кеша
func (r *CacheRepo) GetJSON(key string, dest interface{}) error {
	ctx, cancel := r.opContext()
	defer cancel()
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete удаляет значение из кеша
func (r *CacheRepo) Delete(key string) error {
	ctx, cancel := r.opContext()
	defer cancel()
	return r.client.Del(ctx, key).Err()
}

// Ping проверяет доступность Redis
func (r *CacheRepo) Ping() error {
	ctx, cancel := r.opContext()
	defer cancel()
	return r.client.Ping(ctx).Err()
}
