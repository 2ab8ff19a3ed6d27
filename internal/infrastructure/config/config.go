package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`

	// LLM grading
	LLMProvider  string        `validate:"oneof=openai local gemini none"`
	LLMURL       string        `validate:"omitempty,url"` // OpenAI-compatible endpoint, e.g. "https://api.openai.com"
	LLMModel     string        // e.g. "gpt-4o-mini"
	OpenAIAPIKey string        // empty routes every call to the fallback
	GeminiAPIKey string        // used when LLMProvider is "gemini"
	GeminiModel  string        // e.g. "gemini-2.5-flash"
	LLMTimeout   time.Duration `validate:"gt=0"`

	// Question banks: built-in banks are used when both are empty.
	QuestionBankFile string // YAML file replacing the built-in banks
	QuestionBankDB   string // SQLite database path, seeded from the banks above

	PlaceholderImage string // served at /static/placeholder.png when present
}

// Load reads configuration from the environment, after loading a .env file
// if one exists. A missing API key is not an error.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	shutdown, err := getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	llmTimeout, err := getDurationDefault("LLM_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddress:    getenvDefault("SERVER_ADDRESS", ":8000"),
		ShutdownTimeout:  shutdown,
		LogLevel:         strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		LLMProvider:      strings.ToLower(getenvDefault("LLM_PROVIDER", "openai")),
		LLMURL:           getenvDefault("LLM_URL", "https://api.openai.com"),
		LLMModel:         getenvDefault("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		LLMTimeout:       llmTimeout,
		QuestionBankFile: os.Getenv("QUESTION_BANK_FILE"),
		QuestionBankDB:   os.Getenv("QUESTION_BANK_DB"),
		PlaceholderImage: os.Getenv("PLACEHOLDER_IMAGE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and returns an error naming each bad
// field.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("config: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getDurationDefault(k string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d, nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
