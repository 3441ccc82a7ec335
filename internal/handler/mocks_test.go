package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/middleware"
	"github.com/yourusername/trivia-questions/internal/service"
	"github.com/yourusername/trivia-questions/internal/service/quizmanager"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ============================================================================
// Моки репозиториев
// ============================================================================

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListByCategory(categoryID uint) ([]entity.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Search(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

// fakePinger - заглушка для healthcheck
type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }
func (p fakePinger) Ping() error                           { return p.err }

// ============================================================================
// Тестовое окружение
// ============================================================================

type testEnv struct {
	engine       *gin.Engine
	questionRepo *MockQuestionRepository
	categoryRepo *MockCategoryRepository
}

// newTestEnv собирает настоящий роутер поверх моков репозиториев. Кэш отключен.
func newTestEnv(writeLimit gin.HandlerFunc) *testEnv {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)

	categoryService := service.NewCategoryService(categoryRepo, nil, 0)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo, quizmanager.NewSelectorWithRand(rand.New(rand.NewPCG(1, 2))))

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.Recovery())
	router := &Router{
		Questions:  NewQuestionHandler(questionService),
		Category:   NewCategoryHandler(categoryService),
		Quiz:       NewQuizHandler(quizService),
		Health:     NewHealthHandler(fakePinger{}, nil),
		WriteLimit: writeLimit,
	}
	router.Register(engine)

	return &testEnv{engine: engine, questionRepo: questionRepo, categoryRepo: categoryRepo}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// assertErrorEnvelope проверяет единый формат ошибки
func assertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := parseJSONResponse(t, w)
	require.Equal(t, false, resp["success"])
	require.Equal(t, float64(status), resp["error"])
	require.Equal(t, message, resp["message"])
}

func testCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
}

// makeQuestions создает n вопросов с ID 1..n; нечетные - категория 1, четные - категория 2
func makeQuestions(n int) []entity.Question {
	questions := make([]entity.Question, n)
	for i := range questions {
		id := uint(i + 1)
		category := uint(1)
		if id%2 == 0 {
			category = 2
		}
		questions[i] = entity.Question{
			ID:         id,
			Text:       "What is question?",
			Answer:     "Answer",
			Category:   category,
			Difficulty: 1,
		}
	}
	return questions
}

func questionIDs(t *testing.T, resp map[string]interface{}) []uint {
	t.Helper()
	raw, ok := resp["questions"].([]interface{})
	require.True(t, ok, "questions must be an array")
	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		q := item.(map[string]interface{})
		ids = append(ids, uint(q["id"].(float64)))
	}
	return ids
}
