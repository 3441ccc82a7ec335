package service

import (
	"fmt"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/domain/repository"
	"github.com/yourusername/trivia-questions/internal/service/quizmanager"
)

// QuizService отвечает за игровой режим: выдачу следующего случайного вопроса
type QuizService struct {
	questionRepo repository.QuestionRepository
	selector     *quizmanager.Selector
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, selector *quizmanager.Selector) *QuizService {
	if selector == nil {
		selector = quizmanager.NewSelector()
	}
	return &QuizService{
		questionRepo: questionRepo,
		selector:     selector,
	}
}

// NextQuestion возвращает случайный еще не заданный вопрос категории categoryID
// (0 - все категории). Когда вопросы закончились, возвращает (nil, nil).
func (s *QuizService) NextQuestion(categoryID uint, previousQuestions []uint) (*entity.Question, error) {
	pool, err := s.questionRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz pool for category %d: %w", categoryID, err)
	}
	return s.selector.Next(pool, categoryID, previousQuestions), nil
}
