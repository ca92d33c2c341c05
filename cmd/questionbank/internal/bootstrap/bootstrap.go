package bootstrap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	questionbank "github.com/skywallkee/kubestronaut-preparation-demo-platform"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging/gologger"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

// Options captures configuration shared by the question bank CLIs.
type Options struct {
	LogLevel  string
	LogFormat string
	// LoggerProvider overrides the default go-logger provider; tests use it
	// to capture output.
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the questionbank module plus the run-scoped logger handed to
// command handlers.
type Module struct {
	Module *questionbank.Module
	RunID  string
	Logger interfaces.Logger
}

// BuildModule wires a questionbank module for CLI use. Every run gets a
// unique run_id field so interleaved logs stay attributable.
func BuildModule(cfg questionbank.Config, opts Options) (*Module, error) {
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	provider := opts.LoggerProvider
	if provider == nil && strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) != "noop" {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("initialise logger: %w", err)
		}
		provider = built
	}

	module, err := questionbank.New(cfg, questionbank.WithLoggerProvider(provider))
	if err != nil {
		return nil, fmt.Errorf("initialise questionbank module: %w", err)
	}

	runID := uuid.NewString()
	logger := logging.WithFields(logging.ModuleLogger(provider, "cli"), map[string]any{
		"run_id": runID,
	})

	return &Module{
		Module: module,
		RunID:  runID,
		Logger: logger,
	}, nil
}
