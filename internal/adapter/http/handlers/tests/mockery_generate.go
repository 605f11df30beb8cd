package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TodoService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename todo_service_mock.go --with-expecter
//go:generate mockery --name AIService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename ai_service_mock.go --with-expecter
