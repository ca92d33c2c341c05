package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

// TelemetryStatus classifies how a batch run ended.
type TelemetryStatus string

const (
	// TelemetryStatusSuccess marks a run that completed cleanly.
	TelemetryStatusSuccess TelemetryStatus = "success"
	// TelemetryStatusFailed marks a run whose exec returned an error.
	TelemetryStatusFailed TelemetryStatus = "failed"
	// TelemetryStatusContextError marks a run killed by cancellation or a
	// deadline before or during exec.
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo is the outcome snapshot handed to telemetry callbacks after
// every run, successful or not.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is invoked once per run with the outcome snapshot.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs each run's duration and status through the supplied
// logger. It is the callback the extract and normalize handlers install
// unless a caller overrides it.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		args := []any{"duration_ms", info.Duration.Milliseconds()}
		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info("command.run.succeeded", args...)
		case TelemetryStatusContextError:
			entry.Error("command.run.interrupted", append(args, "error", info.Error)...)
		default:
			entry.Error("command.run.failed", append(args, "error", info.Error)...)
		}
	}
}
