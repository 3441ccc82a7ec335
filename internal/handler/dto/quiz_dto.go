package dto

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
)

// QuizCategoryRef - категория викторины в том виде, в каком ее присылает фронтенд: {"type": "...", "id": 0}.
// ID == nil - ключа id нет; NullID - ключ есть, но равен null.
type QuizCategoryRef struct {
	ID     *FlexibleUint
	NullID bool
	Type   string
}

// UnmarshalJSON отличает отсутствующий id от "id": null
func (r *QuizCategoryRef) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Type string          `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Type = raw.Type
	r.ID = nil
	r.NullID = false
	if len(raw.ID) == 0 {
		return nil
	}
	if string(raw.ID) == "null" {
		r.NullID = true
		return nil
	}

	var id FlexibleUint
	if err := json.Unmarshal(raw.ID, &id); err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// PlayQuizRequest - тело POST /quizzes
type PlayQuizRequest struct {
	QuizCategory      *QuizCategoryRef `json:"quiz_category"`
	PreviousQuestions *[]uint          `json:"previous_questions"`
}

// Validate проверяет обязательные поля. Ошибка оборачивает apperrors.ErrMalformedInput:
// такие запросы отдаются как 500, а не 400.
func (r *PlayQuizRequest) Validate() error {
	if r.PreviousQuestions == nil {
		return fmt.Errorf("%w: previous_questions is required", apperrors.ErrMalformedInput)
	}
	if r.QuizCategory == nil || (r.QuizCategory.ID == nil && !r.QuizCategory.NullID) {
		return fmt.Errorf("%w: quiz_category.id is required", apperrors.ErrMalformedInput)
	}
	return nil
}

// NoCategory сообщает, что id категории равен null: такой фильтр не совпадает ни с одним вопросом
func (r *PlayQuizRequest) NoCategory() bool {
	return r.QuizCategory != nil && r.QuizCategory.NullID
}

// CategoryID возвращает ID категории; 0 означает все категории
func (r *PlayQuizRequest) CategoryID() uint {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil {
		return 0
	}
	return r.QuizCategory.ID.Uint()
}

// Previous возвращает список уже заданных вопросов
func (r *PlayQuizRequest) Previous() []uint {
	if r.PreviousQuestions == nil {
		return nil
	}
	return *r.PreviousQuestions
}

// PlayQuizResponse - ответ POST /quizzes. Question == nil (null) означает, что вопросы закончились.
type PlayQuizResponse struct {
	Success           bool             `json:"success"`
	Question          *entity.Question `json:"question"`
	PreviousQuestions []uint           `json:"previousQuestions"`
}

// NewPlayQuizResponse создает DTO ответа викторины
func NewPlayQuizResponse(question *entity.Question, previous []uint) PlayQuizResponse {
	if previous == nil {
		previous = []uint{}
	}
	return PlayQuizResponse{
		Success:           true,
		Question:          question,
		PreviousQuestions: previous,
	}
}
