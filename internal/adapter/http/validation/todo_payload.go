package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"todoai/internal/adapter/http/dto"
	"todoai/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

func BuildCreateTodoInput(req dto.CreateTodoRequest) (domain.CreateTodoInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	return domain.CreateTodoInput{
		Title:       title,
		Description: trimOptional(req.Description),
	}, nil
}

func BuildUpdateTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoInput, error) {
	if !hasTodoUpdateFields(raw) {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
		}
		title = &value
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	return domain.UpdateTodoInput{
		Title:          title,
		Description:    trimOptional(req.Description),
		DescriptionSet: descriptionSet,
		Completed:      req.Completed,
	}, nil
}

// trimOptional maps blank descriptions to nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func hasTodoUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "completed")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
