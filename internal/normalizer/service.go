package normalizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

// Config controls the namespace normalizer.
type Config struct {
	// Namespaces is the ordered placeholder list; a question numbered n is
	// assigned Namespaces[n mod len(Namespaces)].
	Namespaces []string
}

// Service implements interfaces.NormalizerService. It rewrites question
// files in place, one file at a time; a broken file is logged and counted,
// never fatal to the batch.
type Service struct {
	rules  *ruleSet
	logger interfaces.Logger
}

var _ interfaces.NormalizerService = (*Service)(nil)

// NewService compiles the rewrite rules for the configured namespace list.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	rules, err := newRuleSet(cfg.Namespaces)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{rules: rules, logger: logger}, nil
}

// Namespaces returns the configured placeholder list in assignment order.
func (s *Service) Namespaces() []string {
	return append([]string(nil), s.rules.namespaces...)
}

// NormalizeDirectory walks the tree under dir and rewrites every *.json
// question file so namespace references match the namespace assigned from
// the question number embedded in the filename.
func (s *Service) NormalizeDirectory(ctx context.Context, dir string, opts interfaces.NormalizeOptions) (*interfaces.NormalizeResult, error) {
	result := &interfaces.NormalizeResult{}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		result.Processed++
		outcome := s.normalizeFile(path, opts.DryRun)
		result.Files = append(result.Files, outcome)
		if outcome.Err != nil {
			result.Failed++
			logging.WithQuestionContext(s.logger, path, "").
				Error("normalizer.file_failed", "error", outcome.Err)
			return nil
		}
		result.Updated++
		logging.WithQuestionContext(s.logger, path, outcome.Namespace).
			Info("normalizer.file_updated")
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("normalizer: walk %s: %w", dir, walkErr)
	}

	s.logger.Info("normalizer.completed",
		"processed", result.Processed,
		"updated", result.Updated,
		"failed", result.Failed,
		"dry_run", opts.DryRun,
	)
	return result, nil
}

// normalizeFile applies the namespace assignment to a single question file.
func (s *Service) normalizeFile(path string, dryRun bool) interfaces.NormalizedFile {
	outcome := interfaces.NormalizedFile{Path: path}

	number, ok := questionNumber(filepath.Base(path))
	if !ok {
		outcome.Err = fmt.Errorf("no question number in filename %s", filepath.Base(path))
		return outcome
	}
	assigned := s.rules.assign(number)
	outcome.Namespace = assigned

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	question, err := ParseObject(data)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	s.applyAssignment(question, assigned)

	if dryRun {
		return outcome
	}

	encoded, err := encodeDocument(question)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		outcome.Err = err
		return outcome
	}
	return outcome
}

// applyAssignment mutates the in-memory document: the namespaces array
// (guarded), the description markers, the solution steps and the validation
// commands.
func (s *Service) applyAssignment(question *Object, assigned string) {
	if infra := question.GetObject("infrastructure"); infra != nil {
		if namespaces, ok := infra.Get("namespaces"); ok {
			if items, ok := namespaces.([]any); ok && len(items) == 1 {
				current, isString := items[0].(string)
				if isString && s.rules.eligible(current) {
					infra.Set("namespaces", []any{assigned})
				}
			}
		}
	}

	if description, ok := question.GetString("description"); ok {
		question.Set("description", s.rules.rewriteMarkers(description, assigned))
	}

	if solution := question.GetObject("solution"); solution != nil {
		if steps := solution.GetArray("steps"); steps != nil {
			for i, step := range steps {
				if text, ok := step.(string); ok {
					steps[i] = s.rules.rewriteCommand(text, assigned)
				}
			}
			solution.Set("steps", steps)
		}
	}

	for _, entry := range question.GetArray("validations") {
		check, ok := entry.(*Object)
		if !ok {
			continue
		}
		if command, ok := check.GetString("command"); ok {
			check.Set("command", s.rules.rewriteCommand(command, assigned))
		}
	}
}

func encodeDocument(question *Object) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(question); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
