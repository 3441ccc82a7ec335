package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	// List возвращает все категории, отсортированные по ID
	List() ([]entity.Category, error)
}
