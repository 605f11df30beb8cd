package mapper

import (
	"time"
	"todoai/internal/adapter/http/dto"
	"todoai/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt: todo.UpdatedAt.Format(time.RFC3339),
	}

	if todo.Description != nil {
		value := *todo.Description
		item.Description = &value
	}

	return item
}

func ToDomainTodos(items []dto.AnalyzeTodoItem) []domain.Todo {
	todos := make([]domain.Todo, 0, len(items))
	for _, item := range items {
		todos = append(todos, domain.Todo{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Completed:   item.Completed,
		})
	}
	return todos
}
