package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todoai/internal/core/domain"
)

type todoRepositoryMock struct {
	mock.Mock
}

func (m *todoRepositoryMock) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoRepositoryMock) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoRepositoryMock) CreateTodo(ctx context.Context, todo domain.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *todoRepositoryMock) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *todoRepositoryMock) DeleteTodo(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestTodoService_CreateTodo(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := new(todoRepositoryMock)
	repo.On("CreateTodo", mock.Anything, mock.MatchedBy(func(todo domain.Todo) bool {
		_, err := uuid.Parse(todo.ID)
		return err == nil && todo.Title == "Buy milk" && !todo.Completed
	})).Return(nil).Once()

	svc := NewTodoService(repo)
	svc.now = func() time.Time { return fixed }

	got, err := svc.CreateTodo(context.Background(), domain.CreateTodoInput{Title: "Buy milk"})

	require.NoError(t, err)
	require.Equal(t, fixed, got.CreatedAt)
	require.Equal(t, fixed, got.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestTodoService_UpdateTodo_AppliesPartialInput(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	description := "old"
	completed := true

	repo := new(todoRepositoryMock)
	repo.On("GetTodo", mock.Anything, "todo-1").Return(domain.Todo{
		ID:          "todo-1",
		Title:       "Buy milk",
		Description: &description,
		CreatedAt:   created,
		UpdatedAt:   created,
	}, nil).Once()
	repo.On("UpdateTodo", mock.Anything, mock.MatchedBy(func(todo domain.Todo) bool {
		return todo.Title == "Buy milk" && todo.Description == nil && todo.Completed && todo.UpdatedAt.Equal(updated)
	})).Return(nil).Once()

	svc := NewTodoService(repo)
	svc.now = func() time.Time { return updated }

	got, err := svc.UpdateTodo(context.Background(), "todo-1", domain.UpdateTodoInput{
		DescriptionSet: true,
		Completed:      &completed,
	})

	require.NoError(t, err)
	require.True(t, got.Completed)
	require.Nil(t, got.Description)
	require.Equal(t, created, got.CreatedAt)
	repo.AssertExpectations(t)
}

func TestTodoService_UpdateTodo_NotFound(t *testing.T) {
	repo := new(todoRepositoryMock)
	repo.On("GetTodo", mock.Anything, "missing").Return(domain.Todo{}, domain.ErrTodoNotFound).Once()

	svc := NewTodoService(repo)
	_, err := svc.UpdateTodo(context.Background(), "missing", domain.UpdateTodoInput{})

	require.ErrorIs(t, err, domain.ErrTodoNotFound)
	repo.AssertExpectations(t)
}
