package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/middleware"
	"github.com/yourusername/trivia-questions/internal/service"
)

// QuizHandler обрабатывает ходы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// PlayQuiz возвращает следующий случайный вопрос, которого нет в previous_questions.
// question: null означает конец викторины; так же отвечает запрос с "id": null.
// Некорректное тело запроса отдается как 500.
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuizHandler] request_id=%s некорректное тело запроса: %v", middleware.GetRequestID(c), err)
		respondError(c, http.StatusInternalServerError)
		return
	}
	if err := req.Validate(); err != nil {
		handleServiceError(c, "QuizHandler.PlayQuiz", err)
		return
	}

	previous := req.Previous()
	if req.NoCategory() {
		c.JSON(http.StatusOK, dto.NewPlayQuizResponse(nil, previous))
		return
	}

	question, err := h.quizService.NextQuestion(req.CategoryID(), previous)
	if err != nil {
		handleServiceError(c, "QuizHandler.PlayQuiz", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPlayQuizResponse(question, previous))
}
