package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"todoai/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dbadapter "todoai/internal/adapter/db"
	httpadapter "todoai/internal/adapter/http"
	"todoai/internal/adapter/http/handlers"
	httpmiddleware "todoai/internal/adapter/http/middleware"
	"todoai/internal/adapter/llm"
	"todoai/internal/adapter/ratelimit"
	"todoai/internal/adapter/secrets"
	"todoai/internal/app/service"
	"todoai/internal/config"
	"todoai/internal/core/ports"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	apiKeys := secrets.NewCachedProvider(secrets.NewEnvProvider(cfg.AI.APIKeyEnv))
	gateway := llm.NewRetryingGateway(newGateway(cfg.AI, apiKeys), cfg.AI.MaxAttempts, cfg.AI.RetryInitialInterval)
	if _, err := apiKeys.APIKey(context.Background()); err != nil {
		logger.Warn("ai features disabled until the api key is set",
			zap.String("provider", cfg.AI.Provider),
			zap.String("env", cfg.AI.APIKeyEnv),
		)
	}

	todoService := service.NewTodoService(dbadapter.NewTodoRepository(db))
	aiService := service.NewAIService(gateway, cfg.AI)

	analyzeLimiter := ratelimit.NewFixedWindow("analyze", cfg.RateLimit.AnalyzeLimit, cfg.RateLimit.Window)
	breakdownLimiter := ratelimit.NewFixedWindow("breakdown", cfg.RateLimit.BreakdownLimit, cfg.RateLimit.Window)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(db, apiKeys),
		handlers.NewTodoHandler(todoService),
		handlers.NewAIHandler(aiService),
		httpadapter.RateLimiters{Analyze: analyzeLimiter, Breakdown: breakdownLimiter},
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept-Language"},
		ExposedHeaders: []string{"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           corsHandler.Handler(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("ai_provider", cfg.AI.Provider))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return analyzeLimiter.Run(gctx, cfg.RateLimit.SweepInterval)
	})
	g.Go(func() error {
		return breakdownLimiter.Run(gctx, cfg.RateLimit.SweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func newGateway(cfg config.AIConfig, apiKeys ports.SecretProvider) ports.CompletionGateway {
	httpClient := &http.Client{}
	if cfg.Provider == config.ProviderGemini {
		return llm.NewGeminiGateway(apiKeys, httpClient, cfg.BaseURL)
	}
	return llm.NewOpenAIGateway(cfg.BaseURL, apiKeys, httpClient)
}
