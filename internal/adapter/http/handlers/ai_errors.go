package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"todoai/internal/adapter/http/middleware"
	"todoai/internal/adapter/http/validation"
	"todoai/internal/core/domain"
	"todoai/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validationMessageKeys = map[*domain.ValidationError]string{
	domain.ErrGoalRequired:                apierrors.MsgGoalRequired,
	domain.ErrGoalTooShort:                apierrors.MsgGoalTooShort,
	domain.ErrGoalTooLong:                 apierrors.MsgGoalTooLong,
	domain.ErrInvalidMaxTasks:             apierrors.MsgInvalidMaxTasks,
	validation.ErrInvalidAnalyzePayload:   apierrors.MsgInvalidAnalyzePayload,
	validation.ErrInvalidBreakdownPayload: apierrors.MsgInvalidBreakdownPayload,
}

type classifiedError struct {
	status  int
	msgKey  string
	details string
}

// classifyAIError maps pipeline failures to HTTP responses. The order of the
// checks is significant: a wrapped error is classified by its first match.
func classifyAIError(err error, fallbackKey string) classifiedError {
	var (
		validationErr *domain.ValidationError
		providerErr   *domain.ProviderError
	)

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return classifiedError{http.StatusServiceUnavailable, apierrors.MsgAINotConfigured, domain.ErrNotConfigured.Error()}
	case errors.Is(err, domain.ErrTimeout):
		return classifiedError{http.StatusGatewayTimeout, apierrors.MsgAITimeout, err.Error()}
	case errors.As(err, &validationErr):
		if key, ok := validationMessageKeys[validationErr]; ok {
			return classifiedError{http.StatusBadRequest, key, ""}
		}
		return classifiedError{http.StatusBadRequest, apierrors.MsgInvalidInput, validationErr.Message}
	case errors.Is(err, domain.ErrEmptyResult):
		return classifiedError{http.StatusInternalServerError, apierrors.MsgAINoValidTasks, ""}
	case errors.Is(err, domain.ErrMalformedResponse), errors.Is(err, domain.ErrEmptyResponse):
		return classifiedError{http.StatusInternalServerError, apierrors.MsgAIUnexpectedFormat, ""}
	case errors.As(err, &providerErr):
		return classifiedError{http.StatusBadGateway, apierrors.MsgAIProviderError, fmt.Sprintf("upstream status %d", providerErr.StatusCode)}
	default:
		return classifiedError{http.StatusInternalServerError, fallbackKey, ""}
	}
}

func respondAIError(c *gin.Context, err error, fallbackKey string) {
	classified := classifyAIError(err, fallbackKey)

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", classified.status),
		zap.Error(err),
	}
	switch {
	case classified.status == http.StatusBadRequest:
		zap.L().Debug("rejected ai request", fields...)
	case classified.msgKey == fallbackKey:
		zap.L().Error("unclassified ai failure", fields...)
	default:
		zap.L().Warn("ai request failed", fields...)
	}

	body := apierrors.CreateError(classified.status, classified.msgKey, middleware.GetLang(c))
	if classified.details != "" {
		body = body.WithDetails(classified.details)
	}
	c.JSON(classified.status, body)
}
