package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
)

// QuestionPage - одна страница вопросов вместе с общим количеством и картой категорий
type QuestionPage struct {
	Questions      []entity.Question
	TotalQuestions int
	Categories     entity.CategoryMap
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryService *CategoryService,
) *QuestionService {
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу всех вопросов.
// Пустая страница - apperrors.ErrNotFound.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return s.pageOrNotFound(questions, page)
}

// QuestionsByCategory возвращает страницу вопросов категории.
// Пустая страница (в том числе неизвестная категория) - apperrors.ErrNotFound.
func (s *QuestionService) QuestionsByCategory(categoryID uint, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	return s.pageOrNotFound(questions, page)
}

// SearchQuestions ищет вопросы по подстроке без учета регистра.
// Пустой term - apperrors.ErrValidation, пустая страница - apperrors.ErrNotFound.
func (s *QuestionService) SearchQuestions(term string, page int) (*QuestionPage, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", apperrors.ErrValidation)
	}

	questions, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return s.pageOrNotFound(questions, page)
}

// CreateQuestion сохраняет новый вопрос и возвращает обновленную страницу.
// Незаполненные поля - apperrors.ErrValidation; любая ошибка во время записи - apperrors.ErrUnprocessable.
func (s *QuestionService) CreateQuestion(question *entity.Question, page int) (*QuestionPage, error) {
	question.Text = strings.TrimSpace(question.Text)
	question.Answer = strings.TrimSpace(question.Answer)
	if !question.IsComplete() {
		return nil, fmt.Errorf("%w: question, answer, category and difficulty are required", apperrors.ErrValidation)
	}

	if err := s.questionRepo.Create(question); err != nil {
		log.Printf("[QuestionService] Ошибка при создании вопроса: %v", err)
		return nil, unprocessable("failed to create question", err)
	}
	log.Printf("[QuestionService] Создан вопрос ID=%d (категория %d)", question.ID, question.Category)

	result, err := s.refreshedPage(page)
	if err != nil {
		return nil, unprocessable("failed to reload questions after create", err)
	}
	return result, nil
}

// DeleteQuestion удаляет вопрос и возвращает обновленную страницу.
// Несуществующий ID и любая ошибка записи - apperrors.ErrUnprocessable.
// Пустая страница после удаления не считается ошибкой.
func (s *QuestionService) DeleteQuestion(id uint, page int) (*QuestionPage, error) {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[QuestionService] Ошибка при поиске вопроса ID=%d для удаления: %v", id, err)
		}
		return nil, unprocessable(fmt.Sprintf("question #%d cannot be deleted", id), err)
	}

	if err := s.questionRepo.Delete(id); err != nil {
		log.Printf("[QuestionService] Ошибка при удалении вопроса ID=%d: %v", id, err)
		return nil, unprocessable(fmt.Sprintf("failed to delete question #%d", id), err)
	}
	log.Printf("[QuestionService] Удален вопрос ID=%d", id)

	result, err := s.refreshedPage(page)
	if err != nil {
		return nil, unprocessable("failed to reload questions after delete", err)
	}
	return result, nil
}

// ExportQuestions возвращает все вопросы и карту категорий для выгрузки
func (s *QuestionService) ExportQuestions() ([]entity.Question, entity.CategoryMap, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions for export: %w", err)
	}
	categories, err := s.categoryService.GetCategoryMap()
	if err != nil {
		return nil, nil, err
	}
	return questions, categories, nil
}

// refreshedPage строит страницу по всем вопросам без проверки на пустоту
func (s *QuestionService) refreshedPage(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.buildPage(questions, page)
}

func (s *QuestionService) pageOrNotFound(questions []entity.Question, page int) (*QuestionPage, error) {
	result, err := s.buildPage(questions, page)
	if err != nil {
		return nil, err
	}
	if len(result.Questions) == 0 {
		return nil, fmt.Errorf("%w: page %d is empty", apperrors.ErrNotFound, page)
	}
	return result, nil
}

func (s *QuestionService) buildPage(questions []entity.Question, page int) (*QuestionPage, error) {
	categories, err := s.categoryService.GetCategoryMap()
	if err != nil {
		return nil, err
	}
	return &QuestionPage{
		Questions:      pagination.Paginate(questions, page),
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// unprocessable оборачивает ошибку записи в apperrors.ErrUnprocessable, сохраняя причину в цепочке
func unprocessable(msg string, err error) error {
	if errors.Is(err, apperrors.ErrUnprocessable) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrUnprocessable, err)
}
