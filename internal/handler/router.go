package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions/internal/middleware"
)

// Router собирает маршруты API
type Router struct {
	Questions *QuestionHandler
	Category  *CategoryHandler
	Quiz      *QuizHandler
	Health    *HealthHandler

	// WriteLimit - middleware для POST /questions и DELETE /questions/:id; nil отключает лимит
	WriteLimit gin.HandlerFunc
}

// Register регистрирует маршруты и обработчики 404/405 на engine
func (r *Router) Register(engine *gin.Engine) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NotFound())
	engine.NoMethod(middleware.MethodNotAllowed())

	writeChain := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if r.WriteLimit == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{r.WriteLimit}, handlers...)
	}

	if r.Health != nil {
		engine.GET("/healthz", r.Health.Health)
	}

	engine.GET("/categories", r.Category.GetCategories)
	engine.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		r.Questions.GetCategoryQuestions,
	)

	questions := engine.Group("/questions")
	{
		questions.GET("", r.Questions.ListQuestions)
		questions.POST("", writeChain(r.Questions.CreateQuestion)...)
		questions.POST("/search", r.Questions.SearchQuestions)
		questions.GET("/export", r.Questions.ExportQuestions)
		questions.DELETE("/:id", writeChain(
			middleware.ExtractUintParam("id", "questionID"),
			r.Questions.DeleteQuestion,
		)...)
	}

	engine.POST("/quizzes", r.Quiz.PlayQuiz)
}
