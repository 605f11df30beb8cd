package domain

import "time"

type Todo struct {
	ID          string
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTodoInput struct {
	Title       string
	Description *string
}

type UpdateTodoInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
}
