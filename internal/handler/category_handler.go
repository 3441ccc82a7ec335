package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/middleware"
)

// CategoryMapProvider отдает карту категорий {id: type}
type CategoryMapProvider interface {
	GetCategoryMap() (entity.CategoryMap, error)
}

// CategoryHandler обрабатывает запросы к справочнику категорий
type CategoryHandler struct {
	categories CategoryMapProvider
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categories CategoryMapProvider) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GetCategories возвращает все категории.
// Любая ошибка хранилища отдается как 404.
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categories.GetCategoryMap()
	if err != nil {
		log.Printf("[CategoryHandler] request_id=%s ошибка загрузки категорий: %v", middleware.GetRequestID(c), err)
		respondError(c, http.StatusNotFound)
		return
	}
	if categories == nil {
		categories = entity.CategoryMap{}
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}
