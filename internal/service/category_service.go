package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

const (
	// categoryMapCacheKey - ключ Redis для отображения id -> type
	categoryMapCacheKey = "categories:map"

	// DefaultCategoryCacheTTL используется, если TTL не задан в конфигурации
	DefaultCategoryCacheTTL = 10 * time.Minute
)

// CategoryService предоставляет отображение категорий с кешированием в Redis
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository // nil, если Redis отключен
	ttl          time.Duration
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil - тогда категории всегда читаются из БД.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
) *CategoryService {
	if ttl <= 0 {
		ttl = DefaultCategoryCacheTTL
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		ttl:          ttl,
	}
}

// GetCategoryMap возвращает отображение id -> type.
// Ошибки кеша не фатальны: при промахе или сбое Redis данные читаются из БД.
func (s *CategoryService) GetCategoryMap() (entity.CategoryMap, error) {
	if s.cacheRepo != nil {
		var cached entity.CategoryMap
		err := s.cacheRepo.GetJSON(categoryMapCacheKey, &cached)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] WARNING: ошибка чтения кеша категорий: %v", err)
		}
	}

	return s.loadAndCache()
}

// RefreshCache сбрасывает кеш и заново заполняет его из БД.
// Без Redis ничего не делает.
func (s *CategoryService) RefreshCache() error {
	if s.cacheRepo == nil {
		return nil
	}
	if err := s.cacheRepo.Delete(categoryMapCacheKey); err != nil {
		log.Printf("[CategoryService] WARNING: не удалось сбросить кеш категорий: %v", err)
	}
	categoryMap, err := s.loadAndCache()
	if err != nil {
		return err
	}
	log.Printf("[CategoryService] Кеш категорий обновлен: %d записей", len(categoryMap))
	return nil
}

func (s *CategoryService) loadAndCache() (entity.CategoryMap, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categoryMap := entity.NewCategoryMap(categories)

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoryMapCacheKey, categoryMap, s.ttl); err != nil {
			log.Printf("[CategoryService] WARNING: не удалось записать категории в кеш: %v", err)
		}
	}
	return categoryMap, nil
}
