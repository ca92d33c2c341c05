package main

import (
	"context"
	"testing"

	questionbank "github.com/skywallkee/kubestronaut-preparation-demo-platform"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/cmd/questionbank/internal/bootstrap"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

type stubNormalizerService struct {
	calls    int
	lastDir  string
	lastOpts interfaces.NormalizeOptions
}

func (s *stubNormalizerService) NormalizeDirectory(_ context.Context, dir string, opts interfaces.NormalizeOptions) (*interfaces.NormalizeResult, error) {
	s.calls++
	s.lastDir = dir
	s.lastOpts = opts
	return &interfaces.NormalizeResult{}, nil
}

func newStubBuilder(svc *stubNormalizerService) func(questionbank.Config, bootstrap.Options) (*bootstrap.Module, error) {
	return func(cfg questionbank.Config, _ bootstrap.Options) (*bootstrap.Module, error) {
		module, err := questionbank.New(cfg, questionbank.WithNormalizerService(svc))
		if err != nil {
			return nil, err
		}
		return &bootstrap.Module{Module: module, Logger: logging.NoOp()}, nil
	}
}

func TestRunNormalizeUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubNormalizerService{}
	moduleBuilder = newStubBuilder(svc)

	if err := runNormalize([]string{
		"-dir", "./question-bank",
		"-dry-run",
	}); err != nil {
		t.Fatalf("runNormalize returned error: %v", err)
	}
	if svc.calls != 1 {
		t.Fatalf("expected one normalization run, got %d", svc.calls)
	}
	if svc.lastDir != "./question-bank" {
		t.Fatalf("expected directory forwarded, got %q", svc.lastDir)
	}
	if !svc.lastOpts.DryRun {
		t.Fatalf("expected dry run forwarded, got %+v", svc.lastOpts)
	}
}

func TestRunNormalizeShowPatternSkipsExecution(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubNormalizerService{}
	moduleBuilder = newStubBuilder(svc)

	if err := runNormalize([]string{"-show-pattern"}); err != nil {
		t.Fatalf("runNormalize returned error: %v", err)
	}
	if svc.calls != 0 {
		t.Fatalf("expected no normalization run, got %d", svc.calls)
	}
}
