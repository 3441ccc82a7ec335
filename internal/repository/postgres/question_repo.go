package postgres

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return classifyWriteError(fmt.Errorf("create question: %w", err))
	}
	return nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return classifyWriteError(fmt.Errorf("delete question #%d: %w", id, result.Error))
	}
	// Запись могла быть удалена параллельным запросом между GetByID и Delete
	if result.RowsAffected == 0 {
		return fmt.Errorf("question #%d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// ListAll возвращает все вопросы по возрастанию ID
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает вопросы категории по возрастанию ID (0 - все категории)
func (r *QuestionRepo) ListByCategory(categoryID uint) ([]entity.Question, error) {
	if categoryID == 0 {
		return r.ListAll()
	}

	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search ищет вопросы по подстроке без учета регистра (ILIKE).
// Спецсимволы LIKE в term экранируются, поэтому поиск идет по буквальной подстроке.
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := "%" + escapeLike(term) + "%"
	err := r.db.Where("question ILIKE ? ESCAPE '\\'", pattern).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует метасимволы шаблона LIKE
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
