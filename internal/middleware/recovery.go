package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/handler/dto"
)

// Recovery перехватывает панику и отдает конверт 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[Recovery] request_id=%s panic: %v", GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError))
	})
}

// NotFound отдает конверт 404 для неизвестных маршрутов
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound))
	}
}

// MethodNotAllowed отдает конверт 405
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(http.StatusMethodNotAllowed))
	}
}
