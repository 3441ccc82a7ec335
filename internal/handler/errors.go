package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/middleware"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// respondError отправляет конверт ошибки с заданным статусом и прерывает цепочку
func respondError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// handleServiceError сопоставляет ошибку сервиса с HTTP статусом.
// op - имя операции для лога.
func handleServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrUnprocessable), errors.Is(err, apperrors.ErrConflict):
		// проверяется раньше ErrNotFound: удаление несуществующего вопроса несет обе ошибки
		log.Printf("[%s] request_id=%s unprocessable: %v", op, middleware.GetRequestID(c), err)
		respondError(c, http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound)
	default:
		log.Printf("[%s] request_id=%s ERROR: %v", op, middleware.GetRequestID(c), err)
		respondError(c, http.StatusInternalServerError)
	}
}
