package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// DBPinger - проверка соединения с БД (*sql.DB)
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger - проверка соединения с кэшем
type CachePinger interface {
	Ping() error
}

// HealthHandler отдает состояние зависимостей сервиса
type HealthHandler struct {
	db    DBPinger
	cache CachePinger
}

// NewHealthHandler создает обработчик healthcheck. cache может быть nil, если Redis выключен.
func NewHealthHandler(db DBPinger, cache CachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health проверяет БД и кэш. Недоступная БД дает 503, недоступный кэш - нет.
// GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	dbState := "ok"
	if err := h.db.PingContext(ctx); err != nil {
		log.Printf("[Health] БД недоступна: %v", err)
		dbState = "error"
		status = http.StatusServiceUnavailable
	}

	cacheState := "disabled"
	if h.cache != nil {
		cacheState = "ok"
		if err := h.cache.Ping(); err != nil {
			log.Printf("[Health] Redis недоступен: %v", err)
			cacheState = "error"
		}
	}

	c.JSON(status, gin.H{
		"success":  status == http.StatusOK,
		"database": dbState,
		"cache":    cacheState,
	})
}
