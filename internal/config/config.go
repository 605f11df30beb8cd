package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	AppPort            string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	TrustedProxies     []string
	CorsAllowedOrigins []string
	AI                 AIConfig
	RateLimit          RateLimitConfig
}

type AIConfig struct {
	Provider             string
	APIKeyEnv            string
	BaseURL              string
	Model                string
	AnalysisMaxTokens    int
	BreakdownMaxTokens   int
	BreakdownMaxTasks    int
	AnalysisTimeout      time.Duration
	BreakdownTimeout     time.Duration
	MaxAttempts          int
	RetryInitialInterval time.Duration
}

type RateLimitConfig struct {
	Window         time.Duration
	AnalyzeLimit   int
	BreakdownLimit int
	SweepInterval  time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "todoai"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "todoai"),
		DbName:             getEnv("MYSQL_DATABASE", "todoai"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AI:                 loadAIConfig(),
		RateLimit: RateLimitConfig{
			Window:         getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			AnalyzeLimit:   getEnvInt("RATE_LIMIT_ANALYZE", 20),
			BreakdownLimit: getEnvInt("RATE_LIMIT_BREAKDOWN", 10),
			SweepInterval:  getEnvDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
		},
	}
}

func loadAIConfig() AIConfig {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))

	ai := AIConfig{
		Provider:             provider,
		APIKeyEnv:            "OPENAI_API_KEY",
		BaseURL:              getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:                getEnv("AI_MODEL", "gpt-4o-mini"),
		AnalysisMaxTokens:    getEnvInt("AI_ANALYSIS_MAX_TOKENS", 500),
		BreakdownMaxTokens:   getEnvInt("AI_BREAKDOWN_MAX_TOKENS", 1000),
		BreakdownMaxTasks:    getEnvInt("AI_BREAKDOWN_MAX_TASKS", 20),
		AnalysisTimeout:      getEnvDuration("AI_ANALYSIS_TIMEOUT", 10*time.Second),
		BreakdownTimeout:     getEnvDuration("AI_BREAKDOWN_TIMEOUT", 15*time.Second),
		MaxAttempts:          getEnvInt("AI_MAX_ATTEMPTS", 1),
		RetryInitialInterval: getEnvDuration("AI_RETRY_INITIAL_INTERVAL", 500*time.Millisecond),
	}

	if provider == ProviderGemini {
		ai.APIKeyEnv = "GEMINI_API_KEY"
		ai.BaseURL = os.Getenv("GEMINI_BASE_URL")
		ai.Model = getEnv("AI_MODEL", "gemini-2.0-flash")
	}

	return ai
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvDuration accepts Go durations ("15s") or plain seconds ("15").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
