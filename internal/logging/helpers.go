package logging

import (
	"maps"

	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

// WithFields returns a logger that stamps every entry with the given fields.
// The map is cloned so callers may keep mutating theirs. Nil loggers, empty
// maps and loggers without the FieldsLogger extension pass through
// unchanged.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	return fieldsLogger.WithFields(maps.Clone(fields))
}
