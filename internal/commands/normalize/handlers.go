package normalizecmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/commands"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

const normalizeOperation = "normalizer.normalize_directory"

var _ command.Commander[NormalizeDirectoryCommand] = (*NormalizeDirectoryHandler)(nil)

// NormalizeDirectoryHandler orchestrates namespace assignment runs via the
// shared command handler foundation.
type NormalizeDirectoryHandler struct {
	inner *commands.Handler[NormalizeDirectoryCommand]
}

// NewNormalizeDirectoryHandler creates a handler bound to the supplied
// normalizer service.
func NewNormalizeDirectoryHandler(service interfaces.NormalizerService, logger interfaces.Logger, opts ...commands.HandlerOption[NormalizeDirectoryCommand]) *NormalizeDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg NormalizeDirectoryCommand) error {
		result, err := service.NormalizeDirectory(ctx, msg.Directory, interfaces.NormalizeOptions{
			DryRun: msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"processed": result.Processed,
				"updated":   result.Updated,
				"failed":    result.Failed,
				"dry_run":   msg.DryRun,
			}).Info("normalizer.command.normalize_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[NormalizeDirectoryCommand]{
		commands.WithLogger[NormalizeDirectoryCommand](baseLogger),
		commands.WithOperation[NormalizeDirectoryCommand](normalizeOperation),
		commands.WithMessageFields(func(msg NormalizeDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[NormalizeDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &NormalizeDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[NormalizeDirectoryCommand].
func (h *NormalizeDirectoryHandler) Execute(ctx context.Context, msg NormalizeDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
