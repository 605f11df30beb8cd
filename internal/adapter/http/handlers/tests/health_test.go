package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoai/internal/adapter/http/handlers"
	"todoai/internal/adapter/http/middleware"
	"todoai/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type pingerStub struct {
	err error
}

func (p pingerStub) PingContext(_ context.Context) error {
	return p.err
}

type secretStub struct {
	err error
}

func (s secretStub) APIKey(_ context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "sk-test", nil
}

func newHealthRouter(handler *handlers.HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", middleware.LanguageMiddleware(), handler.CheckHealth)
	router.GET("/health/report", middleware.LanguageMiddleware(), handler.CheckHealthReport)
	return router
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	cases := []struct {
		name    string
		db      pingerStub
		status  int
		message string
	}{
		{name: "up", db: pingerStub{}, status: http.StatusOK, message: handlers.StatusOk},
		{name: "down", db: pingerStub{err: errors.New("refused")}, status: http.StatusInternalServerError, message: handlers.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHealthRouter(handlers.NewHealthHandler(tc.db, secretStub{})).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.status, rec.Code)
			var got handlers.HealthBasic
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, tc.message, got.Message)
		})
	}
}

func TestHealthHandler_CheckHealthReport(t *testing.T) {
	handler := handlers.NewHealthHandler(pingerStub{}, secretStub{err: domain.ErrNotConfigured})

	req := httptest.NewRequest(http.MethodGet, "/health/report", nil)
	req.Header.Set("Accept-Language", "fr")
	rec := httptest.NewRecorder()
	newHealthRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusOk, got.Status.Mysql)
	require.Equal(t, handlers.StatusNotConfigured, got.Status.AI)
	require.Equal(t, "fr", got.Language)
}
