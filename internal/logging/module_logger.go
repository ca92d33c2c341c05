package logging

import (
	"context"
	"strings"

	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

const (
	rootModule       = "questionbank"
	extractorModule  = "questionbank.extractor"
	normalizerModule = "questionbank.normalizer"
)

const (
	fieldQuestionFile = "question_file"
	fieldNamespace    = "namespace"
	fieldSourceFile   = "source_file"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ExtractorLogger returns the logger namespace reserved for the markdown
// extractor service.
func ExtractorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, extractorModule)
}

// NormalizerLogger returns the logger namespace reserved for the namespace
// normalizer service.
func NormalizerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, normalizerModule)
}

// WithQuestionContext enriches the provided logger with the fields shared by
// per-file log entries. Empty values are ignored.
func WithQuestionContext(logger interfaces.Logger, path, namespace string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldQuestionFile] = trimmed
	}
	if trimmed := strings.TrimSpace(namespace); trimmed != "" {
		fields[fieldNamespace] = trimmed
	}
	return WithFields(logger, fields)
}

// WithSourceContext tags a logger with the markdown source file a record was
// extracted from.
func WithSourceContext(logger interfaces.Logger, path string) interfaces.Logger {
	if strings.TrimSpace(path) == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldSourceFile: path})
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services operate safely when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
