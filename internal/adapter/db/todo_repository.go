package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"todoai/internal/core/domain"
	"todoai/internal/core/ports"
)

const (
	listTodosQuery = `
SELECT id, title, description, completed, created_at, updated_at
FROM todos
ORDER BY created_at, id;
`
	getTodoQuery = `
SELECT id, title, description, completed, created_at, updated_at
FROM todos
WHERE id = ?;
`
	insertTodoQuery = `
INSERT INTO todos (id, title, description, completed, created_at, updated_at)
VALUES (:id, :title, :description, :completed, :created_at, :updated_at);
`
	updateTodoQuery = `
UPDATE todos
SET title = :title, description = :description, completed = :completed, updated_at = :updated_at
WHERE id = :id;
`
	deleteTodoQuery = `DELETE FROM todos WHERE id = ?;`
)

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listTodosQuery); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}
	return todos, nil
}

func (r *TodoRepository) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	var row todoRow
	if err := r.db.GetContext(ctx, &row, getTodoQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}
	return mapTodoRowToDomainTodo(row), nil
}

func (r *TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) error {
	_, err := r.db.NamedExecContext(ctx, insertTodoQuery, mapDomainTodoToRow(todo))
	return err
}

// UpdateTodo does not check RowsAffected: MySQL reports zero for an update
// that leaves the row unchanged, so existence is checked by the caller.
func (r *TodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	_, err := r.db.NamedExecContext(ctx, updateTodoQuery, mapDomainTodoToRow(todo))
	return err
}

func (r *TodoRepository) DeleteTodo(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTodoQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	todo := domain.Todo{
		ID:        row.ID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}

	if row.Description.Valid {
		value := row.Description.String
		todo.Description = &value
	}

	return todo
}

func mapDomainTodoToRow(todo domain.Todo) todoRow {
	row := todoRow{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
	if todo.Description != nil {
		row.Description = sql.NullString{String: *todo.Description, Valid: true}
	}
	return row
}
