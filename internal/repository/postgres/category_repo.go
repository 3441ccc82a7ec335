package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List возвращает все категории по возрастанию ID
func (r *CategoryRepo) List() ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
