package extractcmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/commands"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

const extractOperation = "extractor.extract_directory"

var _ command.Commander[ExtractDirectoryCommand] = (*ExtractDirectoryHandler)(nil)

// ExtractDirectoryHandler orchestrates extraction runs via the shared
// command handler foundation.
type ExtractDirectoryHandler struct {
	inner *commands.Handler[ExtractDirectoryCommand]
}

// NewExtractDirectoryHandler creates a handler bound to the supplied
// extractor service.
func NewExtractDirectoryHandler(service interfaces.ExtractorService, logger interfaces.Logger, opts ...commands.HandlerOption[ExtractDirectoryCommand]) *ExtractDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ExtractDirectoryCommand) error {
		result, err := service.ExtractDirectory(ctx, msg.Directory, interfaces.ExtractOptions{
			OutputDir: msg.OutputDir,
			DryRun:    msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"files_scanned": result.FilesScanned,
				"sections":      result.Sections,
				"written":       result.Written,
				"failure_count": len(result.Failures),
				"dry_run":       msg.DryRun,
			}).Info("extractor.command.extract_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExtractDirectoryCommand]{
		commands.WithLogger[ExtractDirectoryCommand](baseLogger),
		commands.WithOperation[ExtractDirectoryCommand](extractOperation),
		commands.WithMessageFields(func(msg ExtractDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExtractDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExtractDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExtractDirectoryCommand].
func (h *ExtractDirectoryHandler) Execute(ctx context.Context, msg ExtractDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
