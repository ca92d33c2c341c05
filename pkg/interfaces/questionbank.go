package interfaces

import (
	"context"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Question is the JSON record representing one exam exercise. Field order
// mirrors the on-disk layout produced by the extractor; marshalling relies on
// struct order to keep generated files stable.
type Question struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Difficulty     string          `json:"difficulty"`
	Category       string          `json:"category"`
	Tags           []string        `json:"tags"`
	Points         int             `json:"points"`
	TimeLimit      int             `json:"timeLimit"`
	Infrastructure Infrastructure  `json:"infrastructure"`
	Solution       Solution        `json:"solution"`
	Validations    []QuestionCheck `json:"validations"`
}

// Infrastructure lists the cluster fixtures a question expects before the
// candidate starts working.
type Infrastructure struct {
	Namespaces    []string `json:"namespaces"`
	Resources     []string `json:"resources"`
	Prerequisites []string `json:"prerequisites"`
}

// Solution holds the ordered, numbered instruction strings.
type Solution struct {
	Steps []string `json:"steps"`
}

// QuestionCheck is a single validation entry graded after the exercise.
type QuestionCheck struct {
	Command     string `json:"command"`
	Expected    string `json:"expected"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

var questionIDPattern = regexp.MustCompile(`^[a-z0-9-]+-\d+$`)

// Validate enforces the minimal record shape before a question is written to
// disk. Generated records always pass; the check guards against future
// assembly regressions rather than user input.
func (q Question) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.ID, validation.Required, validation.Match(questionIDPattern)),
		validation.Field(&q.Title, validation.Required),
		validation.Field(&q.Difficulty, validation.Required),
		validation.Field(&q.Category, validation.Required),
		validation.Field(&q.Points, validation.Min(1)),
		validation.Field(&q.TimeLimit, validation.Min(1)),
	)
}

// ExtractOptions tunes a single extraction run.
type ExtractOptions struct {
	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string
	// DryRun assembles records without writing any files.
	DryRun bool
}

// ExtractResult summarises an extraction run across a directory of markdown
// files. Failures carry per-file context so callers can report them without
// aborting the batch.
type ExtractResult struct {
	FilesScanned int
	Sections     int
	Written      int
	Records      []Question
	Failures     []FileFailure
}

// NormalizeOptions tunes a namespace normalization run.
type NormalizeOptions struct {
	// DryRun computes assignments without rewriting any files.
	DryRun bool
}

// NormalizeResult summarises a normalization run over a question bank tree.
type NormalizeResult struct {
	Processed int
	Updated   int
	Failed    int
	Files     []NormalizedFile
}

// NormalizedFile reports the outcome for one question file.
type NormalizedFile struct {
	Path      string
	Namespace string
	Err       error
}

// FileFailure associates a failed input file with its error.
type FileFailure struct {
	Path string
	Err  error
}

// ExtractorService converts markdown exercise files into question records.
type ExtractorService interface {
	// ExtractDirectory processes every markdown file in dir (lexicographic
	// order) and emits one JSON question file per section.
	ExtractDirectory(ctx context.Context, dir string, opts ExtractOptions) (*ExtractResult, error)
}

// NormalizerService rewrites placeholder namespaces in question records so
// each question consistently uses the namespace derived from its number.
type NormalizerService interface {
	// NormalizeDirectory walks the tree under dir and rewrites every *.json
	// question file in place.
	NormalizeDirectory(ctx context.Context, dir string, opts NormalizeOptions) (*NormalizeResult, error)
}
