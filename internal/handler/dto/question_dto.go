package dto

import (
	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/service"
)

// CreateQuestionRequest - тело POST /questions.
// Все поля обязательны; нулевые значения считаются отсутствующими.
type CreateQuestionRequest struct {
	Question   string       `json:"question" validate:"required"`
	Answer     string       `json:"answer" validate:"required"`
	Difficulty FlexibleUint `json:"difficulty" validate:"required"`
	Category   FlexibleUint `json:"category" validate:"required"`
}

// ToEntity преобразует запрос в сущность вопроса
func (r *CreateQuestionRequest) ToEntity() *entity.Question {
	return &entity.Question{
		Text:       r.Question,
		Answer:     r.Answer,
		Difficulty: int(r.Difficulty),
		Category:   r.Category.Uint(),
	}
}

// SearchQuestionsRequest - тело POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

// CategoriesResponse - ответ GET /categories
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories entity.CategoryMap `json:"categories"`
}

// QuestionListResponse - страница вопросов, общая часть всех ответов со списком
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []entity.Question  `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      entity.CategoryMap `json:"categories"`
	CurrentCategory *uint              `json:"current_category"`
}

// CreateQuestionResponse - ответ POST /questions
type CreateQuestionResponse struct {
	QuestionListResponse
	Created uint `json:"created"`
}

// DeleteQuestionResponse - ответ DELETE /questions/:id
type DeleteQuestionResponse struct {
	QuestionListResponse
	Deleted uint `json:"deleted"`
}

// SearchQuestionsResponse - ответ POST /questions/search
type SearchQuestionsResponse struct {
	QuestionListResponse
	SearchTerm string `json:"searchTerm"`
}

// NewQuestionListResponse создает DTO страницы вопросов.
// currentCategory == nil сериализуется как null.
func NewQuestionListResponse(page *service.QuestionPage, currentCategory *uint) QuestionListResponse {
	questions := page.Questions
	if questions == nil {
		questions = []entity.Question{}
	}
	categories := page.Categories
	if categories == nil {
		categories = entity.CategoryMap{}
	}
	return QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  page.TotalQuestions,
		Categories:      categories,
		CurrentCategory: currentCategory,
	}
}
