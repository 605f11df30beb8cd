package http

import (
	"todoai/internal/adapter/http/handlers"
	"todoai/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

// RateLimiters holds one limiter per AI endpoint group.
type RateLimiters struct {
	Analyze   middleware.RateLimiter
	Breakdown middleware.RateLimiter
}

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	todoHandler *handlers.TodoHandler,
	aiHandler *handlers.AIHandler,
	limiters RateLimiters,
) {
	r.GET("/health", middleware.LanguageMiddleware(), healthHandler.CheckHealth)
	r.GET("/health/report", middleware.LanguageMiddleware(), healthHandler.CheckHealthReport)

	todos := r.Group("/todos")
	todos.Use(middleware.LanguageMiddleware())
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
		todos.POST("/analyze", middleware.RateLimit(limiters.Analyze), aiHandler.AnalyzeTodos)
		todos.POST("/breakdown", middleware.RateLimit(limiters.Breakdown), aiHandler.BreakdownGoal)
	}
}
