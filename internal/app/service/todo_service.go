package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	now            func() time.Time
}

func NewTodoService(todoRepository ports.TodoRepository) *TodoService {
	return &TodoService{todoRepository: todoRepository, now: time.Now}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepository.ListTodos(ctx)
}

func (s *TodoService) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	now := s.now().UTC()
	todo := domain.Todo{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.todoRepository.CreateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	todo, err := s.todoRepository.GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.DescriptionSet {
		todo.Description = input.Description
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}
	todo.UpdatedAt = s.now().UTC()

	if err := s.todoRepository.UpdateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("update todo %s: %w", id, err)
	}
	return todo, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	return s.todoRepository.DeleteTodo(ctx, id)
}

var _ ports.TodoService = (*TodoService)(nil)
