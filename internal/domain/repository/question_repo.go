package repository

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// Delete удаляет вопрос; для несуществующего ID возвращает apperrors.ErrNotFound
	Delete(id uint) error

	// ListAll возвращает все вопросы, отсортированные по ID
	ListAll() ([]entity.Question, error)
	// ListByCategory возвращает вопросы категории, отсортированные по ID.
	// categoryID == 0 означает все категории.
	ListByCategory(categoryID uint) ([]entity.Question, error)
	// Search ищет вопросы, текст которых содержит term без учета регистра
	Search(term string) ([]entity.Question, error)
}
