package normalizecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const normalizeDirectoryMessageType = "questionbank.normalizer.normalize_directory"

// NormalizeDirectoryCommand triggers a namespace assignment pass over every
// question file under Directory.
type NormalizeDirectoryCommand struct {
	// Directory selects the question bank tree to rewrite in place.
	Directory string `json:"directory"`
	// DryRun computes assignments without rewriting any file.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (NormalizeDirectoryCommand) Type() string { return normalizeDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd NormalizeDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("questionbank.normalizer.normalize_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
