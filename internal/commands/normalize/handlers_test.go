package normalizecmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

type stubNormalizer struct {
	lastDir  string
	lastOpts interfaces.NormalizeOptions
	result   *interfaces.NormalizeResult
	err      error
}

func (s *stubNormalizer) NormalizeDirectory(_ context.Context, dir string, opts interfaces.NormalizeOptions) (*interfaces.NormalizeResult, error) {
	s.lastDir = dir
	s.lastOpts = opts
	return s.result, s.err
}

func TestNormalizeDirectoryCommandValidate(t *testing.T) {
	if err := (NormalizeDirectoryCommand{Directory: "./bank"}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (NormalizeDirectoryCommand{}).Validate(); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if err := (NormalizeDirectoryCommand{Directory: " "}).Validate(); err == nil {
		t.Fatal("expected error for blank directory")
	}
}

func TestNormalizeDirectoryHandlerExecutesService(t *testing.T) {
	stub := &stubNormalizer{result: &interfaces.NormalizeResult{Processed: 3, Updated: 3}}
	handler := NewNormalizeDirectoryHandler(stub, nil)

	msg := NormalizeDirectoryCommand{Directory: "./bank", DryRun: true}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stub.lastDir != "./bank" {
		t.Fatalf("expected directory forwarded, got %q", stub.lastDir)
	}
	if !stub.lastOpts.DryRun {
		t.Fatalf("expected dry run forwarded, got %+v", stub.lastOpts)
	}
}

func TestNormalizeDirectoryHandlerRejectsInvalidMessage(t *testing.T) {
	stub := &stubNormalizer{}
	handler := NewNormalizeDirectoryHandler(stub, nil)

	err := handler.Execute(context.Background(), NormalizeDirectoryCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if stub.lastDir != "" {
		t.Fatal("service must not run for invalid messages")
	}
}

func TestNormalizeDirectoryHandlerWrapsServiceError(t *testing.T) {
	boom := errors.New("walk failed")
	stub := &stubNormalizer{err: boom}
	handler := NewNormalizeDirectoryHandler(stub, nil)

	err := handler.Execute(context.Background(), NormalizeDirectoryCommand{Directory: "./bank"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
}
