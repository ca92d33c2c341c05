package extractor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/markdown"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

const (
	defaultCategory = "General"

	placeholderCheckCommand     = "echo OK"
	placeholderCheckExpected    = "OK"
	placeholderCheckPoints      = 1
	placeholderCheckDescription = "Placeholder validation"
)

var ErrNamespaceFallbackRequired = errors.New("extractor: default namespace is required")

// Config controls how the extractor discovers exercises and assembles records.
type Config struct {
	// InputDir is the directory holding markdown exercise files.
	InputDir string
	// OutputDir receives one JSON file per extracted question.
	OutputDir string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// Recursive walks sub-directories of InputDir when set.
	Recursive bool
	// IDPrefix is prepended to the sequential question number.
	IDPrefix string
	// StartID is the number assigned to the first extracted section.
	StartID int
	// DefaultPoints and DefaultTimeLimit seed every record.
	DefaultPoints    int
	DefaultTimeLimit int
	// Difficulty labels every record unless frontmatter overrides it.
	Difficulty string
	// DefaultNamespace is used when a section carries no namespace hint.
	DefaultNamespace string
	// ResourceAliases maps detection keywords to canonical resource types.
	ResourceAliases map[string]string
	// Categories maps source filenames to category labels.
	Categories map[string]string
}

// Service implements interfaces.ExtractorService over a filesystem of
// markdown exercises.
type Service struct {
	cfg      Config
	loader   *markdown.Loader
	matchers []resourceMatcher
	logger   interfaces.Logger
}

var _ interfaces.ExtractorService = (*Service)(nil)

// NewService constructs an extractor rooted at cfg.InputDir. The input
// directory is only opened when ExtractDirectory runs, so a missing
// exercises tree never fails module construction.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	return newService(nil, cfg, logger)
}

func newService(filesystem fs.FS, cfg Config, logger interfaces.Logger) (*Service, error) {
	if strings.TrimSpace(cfg.DefaultNamespace) == "" {
		return nil, ErrNamespaceFallbackRequired
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	svc := &Service{
		cfg:      cfg,
		matchers: compileResourceMatchers(cfg.ResourceAliases),
		logger:   logger,
	}
	if filesystem != nil {
		svc.loader = svc.newLoader(filesystem)
	}
	return svc, nil
}

func (s *Service) newLoader(filesystem fs.FS) *markdown.Loader {
	return markdown.NewLoader(filesystem, markdown.LoaderConfig{
		BasePath:  s.cfg.InputDir,
		Pattern:   s.cfg.Pattern,
		Recursive: s.cfg.Recursive,
	})
}

// ExtractDirectory processes every markdown file under dir (relative to the
// configured input root) and emits one JSON question per section. Per-file
// failures are collected; they never abort the batch.
func (s *Service) ExtractDirectory(ctx context.Context, dir string, opts interfaces.ExtractOptions) (*interfaces.ExtractResult, error) {
	loader := s.loader
	if loader == nil {
		filesystem, err := prepareFilesystem(s.cfg.InputDir)
		if err != nil {
			return nil, err
		}
		loader = s.newLoader(filesystem)
	}

	paths, err := loader.Discover(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("extractor: discover %s: %w", dir, err)
	}

	outputDir := s.cfg.OutputDir
	if strings.TrimSpace(opts.OutputDir) != "" {
		outputDir = opts.OutputDir
	}
	if !opts.DryRun {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("extractor: create output dir %s: %w", outputDir, err)
		}
	}

	result := &interfaces.ExtractResult{}
	nextID := s.cfg.StartID

	for _, path := range paths {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		result.FilesScanned++

		fileLogger := logging.WithSourceContext(s.logger, path)

		src, err := loader.LoadFile(ctx, path)
		if err != nil {
			fileLogger.Error("extractor.read_failed", "error", err)
			result.Failures = append(result.Failures, interfaces.FileFailure{Path: path, Err: err})
			continue
		}

		meta, body, err := markdown.ParseFrontMatter(src.Source)
		if err != nil {
			fileLogger.Error("extractor.frontmatter_failed", "error", err)
			result.Failures = append(result.Failures, interfaces.FileFailure{Path: path, Err: err})
			continue
		}

		sections := markdown.Split(body)
		if len(sections) == 0 {
			fileLogger.Warn("extractor.no_sections")
			continue
		}

		for _, section := range sections {
			question := s.buildQuestion(section, src.Name, meta, nextID)
			nextID++
			result.Sections++

			if err := question.Validate(); err != nil {
				fileLogger.Error("extractor.invalid_record", "id", question.ID, "error", err)
				result.Failures = append(result.Failures, interfaces.FileFailure{Path: path, Err: err})
				continue
			}
			result.Records = append(result.Records, question)

			if opts.DryRun {
				continue
			}
			if err := writeQuestion(outputDir, question); err != nil {
				fileLogger.Error("extractor.write_failed", "id", question.ID, "error", err)
				result.Failures = append(result.Failures, interfaces.FileFailure{Path: path, Err: err})
				continue
			}
			result.Written++
		}

		fileLogger.Info("extractor.file_done", "sections", len(sections))
	}

	s.logger.Info("extractor.completed",
		"files", result.FilesScanned,
		"sections", result.Sections,
		"written", result.Written,
		"failed", len(result.Failures),
		"dry_run", opts.DryRun,
	)
	return result, nil
}

func (s *Service) buildQuestion(section markdown.Section, fileName string, meta markdown.FrontMatter, number int) interfaces.Question {
	title := strings.TrimSpace(section.Title)
	namespaces := detectNamespaces(section.Body, s.cfg.DefaultNamespace)
	resources := detectResources(s.matchers, section.Body)

	steps := make([]string, 0, len(section.Commands))
	for i, cmd := range section.Commands {
		steps = append(steps, fmt.Sprintf("%d. %s", i+1, cmd))
	}

	category := s.cfg.Categories[fileName]
	if strings.TrimSpace(meta.Category) != "" {
		category = meta.Category
	}
	if category == "" {
		category = defaultCategory
	}

	difficulty := s.cfg.Difficulty
	if strings.TrimSpace(meta.Difficulty) != "" {
		difficulty = meta.Difficulty
	}

	return interfaces.Question{
		ID:          fmt.Sprintf("%s%d", s.cfg.IDPrefix, number),
		Title:       title,
		Description: title,
		Difficulty:  difficulty,
		Category:    category,
		Tags:        buildTags(resources, namespaces, meta.Tags),
		Points:      s.cfg.DefaultPoints,
		TimeLimit:   s.cfg.DefaultTimeLimit,
		Infrastructure: interfaces.Infrastructure{
			Namespaces:    namespaces,
			Resources:     resources,
			Prerequisites: []string{},
		},
		Solution: interfaces.Solution{Steps: steps},
		Validations: []interfaces.QuestionCheck{
			{
				Command:     placeholderCheckCommand,
				Expected:    placeholderCheckExpected,
				Points:      placeholderCheckPoints,
				Description: placeholderCheckDescription,
			},
		},
	}
}

// buildTags merges the detected resources and namespaces with any
// frontmatter tags, deduplicated and sorted for stable output.
func buildTags(groups ...[]string) []string {
	seen := map[string]struct{}{}
	tags := []string{}
	for _, group := range groups {
		for _, tag := range group {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("extractor: stat input dir %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
