package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// createTestQuestionService создает QuestionService на моках; кеш категорий отключен
func createTestQuestionService(questionRepo *MockQuestionRepository, categoryRepo *MockCategoryRepository) *QuestionService {
	return NewQuestionService(questionRepo, NewCategoryService(categoryRepo, nil, 0))
}

func TestQuestionService_ListQuestions_FirstPage(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return(makeQuestions(25), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	// Act
	page, err := svc.ListQuestions(1)

	// Assert
	require.NoError(t, err)
	assert.Len(t, page.Questions, 10)
	assert.Equal(t, uint(1), page.Questions[0].ID)
	assert.Equal(t, 25, page.TotalQuestions)
	assert.Equal(t, entity.CategoryMap{1: "Science", 2: "Art"}, page.Categories)
}

func TestQuestionService_ListQuestions_LastPartialPage(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return(makeQuestions(25), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	page, err := svc.ListQuestions(3)

	require.NoError(t, err)
	require.Len(t, page.Questions, 5)
	assert.Equal(t, uint(21), page.Questions[0].ID)
	assert.Equal(t, uint(25), page.Questions[4].ID)
}

func TestQuestionService_ListQuestions_PageOutOfRange(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return(makeQuestions(25), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	for _, p := range []int{4, 50000, 0, -1} {
		page, err := svc.ListQuestions(p)

		assert.Nil(t, page, "page=%d", p)
		assert.ErrorIs(t, err, apperrors.ErrNotFound, "page=%d", p)
	}
}

func TestQuestionService_ListQuestions_RepoError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	dbErr := errors.New("db down")
	questionRepo.On("ListAll").Return(nil, dbErr)
	svc := createTestQuestionService(questionRepo, new(MockCategoryRepository))

	_, err := svc.ListQuestions(1)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuestionService_QuestionsByCategory(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	artQuestions := []entity.Question{
		{ID: 2, Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{ID: 4, Text: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
	}
	questionRepo.On("ListByCategory", uint(2)).Return(artQuestions, nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	// Act
	page, err := svc.QuestionsByCategory(2, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, artQuestions, page.Questions)
	assert.Equal(t, 2, page.TotalQuestions)
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_QuestionsByCategory_Empty(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListByCategory", uint(99)).Return([]entity.Question{}, nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	_, err := svc.QuestionsByCategory(99, 1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuestionService_SearchQuestions(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	found := []entity.Question{{ID: 9, Text: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1}}
	questionRepo.On("Search", "what").Return(found, nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	// Act
	page, err := svc.SearchQuestions("what", 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, found, page.Questions)
	assert.Equal(t, 1, page.TotalQuestions)
}

func TestQuestionService_SearchQuestions_EmptyTerm(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := createTestQuestionService(questionRepo, new(MockCategoryRepository))

	_, err := svc.SearchQuestions("", 1)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	questionRepo.AssertNotCalled(t, "Search", mock.Anything)
}

func TestQuestionService_SearchQuestions_NoMatches(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("Search", "zzz").Return([]entity.Question{}, nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	_, err := svc.SearchQuestions("zzz", 1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuestionService_CreateQuestion_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	existing := makeQuestions(3)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*entity.Question).ID = 4
		}).
		Return(nil)
	created := entity.Question{ID: 4, Text: "What's your favorite movie", Answer: "flash", Category: 2, Difficulty: 2}
	questionRepo.On("ListAll").Return(append(existing, created), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	question := &entity.Question{Text: "  What's your favorite movie ", Answer: "flash", Category: 2, Difficulty: 2}

	// Act
	page, err := svc.CreateQuestion(question, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(4), question.ID, "ID должен быть заполнен после вставки")
	assert.Equal(t, "What's your favorite movie", question.Text, "текст сохраняется без крайних пробелов")
	assert.Equal(t, len(existing)+1, page.TotalQuestions, "total_questions растет ровно на 1")
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_CreateQuestion_Incomplete(t *testing.T) {
	tests := []struct {
		name     string
		question entity.Question
	}{
		{name: "без текста", question: entity.Question{Answer: "a", Category: 1, Difficulty: 1}},
		{name: "без ответа", question: entity.Question{Text: "q", Category: 1, Difficulty: 1}},
		{name: "без категории", question: entity.Question{Text: "q", Answer: "a", Difficulty: 1}},
		{name: "без сложности", question: entity.Question{Text: "q", Answer: "a", Category: 1}},
		{name: "текст из пробелов", question: entity.Question{Text: "  ", Answer: "a", Category: 1, Difficulty: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo := new(MockQuestionRepository)
			svc := createTestQuestionService(questionRepo, new(MockCategoryRepository))

			q := tt.question
			_, err := svc.CreateQuestion(&q, 1)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			questionRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestQuestionService_CreateQuestion_WriteFailure(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	dbErr := errors.New("insert failed")
	questionRepo.On("Create", mock.Anything).Return(dbErr)
	svc := createTestQuestionService(questionRepo, new(MockCategoryRepository))

	_, err := svc.CreateQuestion(&entity.Question{Text: "q", Answer: "a", Category: 1, Difficulty: 1}, 1)

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
	assert.ErrorIs(t, err, dbErr, "причина должна сохраняться в цепочке")
}

func TestQuestionService_CreateQuestion_EmptyPageIsNotAnError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("Create", mock.Anything).Return(nil)
	questionRepo.On("ListAll").Return(makeQuestions(3), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	page, err := svc.CreateQuestion(&entity.Question{Text: "q", Answer: "a", Category: 1, Difficulty: 1}, 7)

	require.NoError(t, err)
	assert.Empty(t, page.Questions)
	assert.Equal(t, 3, page.TotalQuestions)
}

func TestQuestionService_DeleteQuestion_Success(t *testing.T) {
	// Arrange: категории {1:"Science", 2:"Art"}, удаляем id=5
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	all := makeQuestions(6)
	remaining := append(append([]entity.Question{}, all[:4]...), all[5])
	questionRepo.On("GetByID", uint(5)).Return(&all[4], nil)
	questionRepo.On("Delete", uint(5)).Return(nil)
	questionRepo.On("ListAll").Return(remaining, nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	// Act
	page, err := svc.DeleteQuestion(5, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalQuestions, "total_questions уменьшается на 1")
	for _, q := range page.Questions {
		assert.NotEqual(t, uint(5), q.ID, "удаленный вопрос не должен попадать в выдачу")
	}
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_DeleteQuestion_NotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetByID", uint(2000)).Return(nil, apperrors.ErrNotFound)
	svc := createTestQuestionService(questionRepo, new(MockCategoryRepository))

	_, err := svc.DeleteQuestion(2000, 1)

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable, "удаление несуществующего вопроса - unprocessable")
	questionRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestQuestionService_DeleteQuestion_Twice(t *testing.T) {
	// Arrange: первый вызов находит вопрос, второй - уже нет
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	q := &entity.Question{ID: 3, Text: "q", Answer: "a", Category: 1, Difficulty: 1}
	questionRepo.On("GetByID", uint(3)).Return(q, nil).Once()
	questionRepo.On("GetByID", uint(3)).Return(nil, apperrors.ErrNotFound).Once()
	questionRepo.On("Delete", uint(3)).Return(nil).Once()
	questionRepo.On("ListAll").Return(makeQuestions(2), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	// Act
	_, firstErr := svc.DeleteQuestion(3, 1)
	_, secondErr := svc.DeleteQuestion(3, 1)

	// Assert
	require.NoError(t, firstErr)
	assert.ErrorIs(t, secondErr, apperrors.ErrUnprocessable)
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_DeleteQuestion_DeleteFailure(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetByID", uint(1)).Return(&entity.Question{ID: 1}, nil)
	questionRepo.On("Delete", uint(1)).Return(errors.New("lock timeout"))
	svc := createTestQuestionService(questionRepo, new(MockCategoryRepository))

	_, err := svc.DeleteQuestion(1, 1)

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestQuestionService_ExportQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return(makeQuestions(12), nil)
	categoryRepo.On("List").Return(testCategories(), nil)
	svc := createTestQuestionService(questionRepo, categoryRepo)

	questions, categories, err := svc.ExportQuestions()

	require.NoError(t, err)
	assert.Len(t, questions, 12, "экспорт выгружает все вопросы без пагинации")
	assert.Len(t, categories, 2)
}

func TestUnprocessable_DoesNotDoubleWrap(t *testing.T) {
	inner := unprocessable("inner", errors.New("boom"))
	outer := unprocessable("outer", inner)

	assert.ErrorIs(t, outer, apperrors.ErrUnprocessable)
	assert.Equal(t, "outer: inner: unprocessable entity: boom", outer.Error())
}
