package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// CategoryCacheRefresher перечитывает категории из БД в кэш
type CategoryCacheRefresher interface {
	RefreshCache() error
}

// Scheduler запускает фоновые задачи по расписанию cron
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler создает планировщик. Паника внутри задачи перехватывается и логируется.
func NewScheduler() *Scheduler {
	logger := cron.PrintfLogger(log.Default())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

// RegisterCategoryCacheWarmup регистрирует задачу прогрева кэша категорий.
// spec - расписание в формате robfig/cron, например "@every 10m".
func (s *Scheduler) RegisterCategoryCacheWarmup(spec string, refresher CategoryCacheRefresher) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, CategoryCacheWarmup(refresher))
	if err != nil {
		return 0, fmt.Errorf("invalid schedule %q for category cache warmup: %w", spec, err)
	}
	log.Printf("[Jobs] Задача прогрева кэша категорий запланирована (%s)", spec)
	return id, nil
}

// CategoryCacheWarmup возвращает тело задачи прогрева кэша категорий
func CategoryCacheWarmup(refresher CategoryCacheRefresher) func() {
	return func() {
		if err := refresher.RefreshCache(); err != nil {
			log.Printf("[Jobs] Ошибка прогрева кэша категорий: %v", err)
			return
		}
		log.Println("[Jobs] Кэш категорий обновлен")
	}
}

// Len возвращает количество зарегистрированных задач
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start запускает планировщик в отдельной горутине
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик. Возвращенный контекст завершается, когда выполняющиеся задачи закончили работу.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
