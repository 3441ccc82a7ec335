package quizmanager

import (
	"math/rand/v2"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
)

// Selector выбирает следующий вопрос викторины равновероятно среди еще не заданных
type Selector struct {
	intN func(n int) int
}

// NewSelector создает селектор на глобальном генераторе math/rand/v2 (безопасен для горутин)
func NewSelector() *Selector {
	return &Selector{intN: rand.IntN}
}

// NewSelectorWithRand создает селектор с заданным генератором.
// *rand.Rand не потокобезопасен: такой селектор нельзя делить между запросами.
func NewSelectorWithRand(r *rand.Rand) *Selector {
	return &Selector{intN: r.IntN}
}

// Candidates возвращает вопросы из pool категории categoryID (0 - все категории),
// ID которых нет в previous. Порядок pool сохраняется.
func Candidates(pool []entity.Question, categoryID uint, previous []uint) []entity.Question {
	asked := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	candidates := make([]entity.Question, 0, len(pool))
	for _, q := range pool {
		if !q.InCategory(categoryID) {
			continue
		}
		if _, seen := asked[q.ID]; seen {
			continue
		}
		candidates = append(candidates, q)
	}
	return candidates
}

// Next возвращает случайный вопрос из кандидатов или nil, если вопросы закончились
func (s *Selector) Next(pool []entity.Question, categoryID uint, previous []uint) *entity.Question {
	candidates := Candidates(pool, categoryID, previous)
	if len(candidates) == 0 {
		return nil
	}
	next := candidates[s.intN(len(candidates))]
	return &next
}
