package extractcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const extractDirectoryMessageType = "questionbank.extractor.extract_directory"

// ExtractDirectoryCommand triggers a markdown extraction pass over the
// provided Directory (relative to the extractor's configured input root).
type ExtractDirectoryCommand struct {
	// Directory selects the directory of markdown exercise files to process.
	Directory string `json:"directory"`
	// OutputDir overrides the configured destination for question records.
	OutputDir string `json:"output_dir,omitempty"`
	// DryRun reports what would be written without touching the filesystem.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ExtractDirectoryCommand) Type() string { return extractDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ExtractDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("questionbank.extractor.extract_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
