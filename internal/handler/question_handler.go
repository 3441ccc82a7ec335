package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
	"github.com/yourusername/trivia-questions/internal/service"
)

var validate = validator.New()

// QuestionHandler обрабатывает запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу всех вопросов
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListQuestions(page)
	if err != nil {
		handleServiceError(c, "QuestionHandler.ListQuestions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(result, nil))
}

// CreateQuestion добавляет вопрос и возвращает актуальную страницу
// POST /questions?page=N
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	question := req.ToEntity()

	result, err := h.questionService.CreateQuestion(question, page)
	if err != nil {
		handleServiceError(c, "QuestionHandler.CreateQuestion", err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		QuestionListResponse: dto.NewQuestionListResponse(result, nil),
		Created:              question.ID,
	})
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id?page=N
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.DeleteQuestion(questionID, page)
	if err != nil {
		handleServiceError(c, "QuestionHandler.DeleteQuestion", err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		QuestionListResponse: dto.NewQuestionListResponse(result, nil),
		Deleted:              questionID,
	})
}

// SearchQuestions ищет вопросы по подстроке без учета регистра
// POST /questions/search?page=N
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.SearchQuestions(req.SearchTerm, page)
	if err != nil {
		handleServiceError(c, "QuestionHandler.SearchQuestions", err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchQuestionsResponse{
		QuestionListResponse: dto.NewQuestionListResponse(result, nil),
		SearchTerm:           req.SearchTerm,
	})
}

// GetCategoryQuestions возвращает страницу вопросов одной категории
// GET /categories/:id/questions?page=N
func (h *QuestionHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.QuestionsByCategory(categoryID, page)
	if err != nil {
		handleServiceError(c, "QuestionHandler.GetCategoryQuestions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(result, &categoryID))
}
