package grader

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	ProviderOpenAI = "openai" // OpenAI API, requires an API key
	ProviderLocal  = "local"  // OpenAI-compatible server without auth (Ollama, LM Studio)
	ProviderGemini = "gemini"
	ProviderNone   = "none" // heuristic grading only
)

// Options selects and configures the remote grading service.
type Options struct {
	Provider     string
	URL          string
	Model        string
	APIKey       string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

// New builds the grader and summarizer the interview service uses. Both are
// wrapped in fallbacks, so neither ever returns an error. A missing
// credential is not fatal: it is logged once and every call falls back.
func New(ctx context.Context, opts Options, logger *slog.Logger, observer FallbackObserver) (Grader, Summarizer, error) {
	remote, err := newRemote(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if _, ok := remote.(unconfigured); ok {
		logger.Warn("no grading service credential configured, using heuristic grading", "provider", opts.Provider)
	} else {
		logger.Info("grading service configured", "provider", opts.Provider)
	}

	g := WithFallback(remote, HeuristicGrader{}, logger, observer)
	s := WithSummaryFallback(remote, logger, observer)
	return g, s, nil
}

type remoteService interface {
	Grader
	Summarizer
}

func newRemote(ctx context.Context, opts Options) (remoteService, error) {
	switch opts.Provider {
	case "", ProviderOpenAI:
		if opts.APIKey == "" {
			return unconfigured{}, nil
		}
		return NewOpenAIClient(opts.URL, opts.Model, opts.APIKey, opts.Timeout), nil
	case ProviderLocal:
		return NewOpenAIClient(opts.URL, opts.Model, "", opts.Timeout), nil
	case ProviderGemini:
		if opts.GeminiAPIKey == "" {
			return unconfigured{}, nil
		}
		return NewGeminiClient(ctx, opts.GeminiAPIKey, opts.GeminiModel, opts.Timeout)
	case ProviderNone:
		return unconfigured{}, nil
	default:
		return nil, fmt.Errorf("unknown grading provider %q", opts.Provider)
	}
}
