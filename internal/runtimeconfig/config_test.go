package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if len(cfg.Normalizer.Namespaces) != 8 {
		t.Fatalf("expected 8 namespaces, got %d", len(cfg.Normalizer.Namespaces))
	}
	if cfg.Extractor.ResourceAliases["svc"] != "services" {
		t.Fatalf("expected svc alias, got %q", cfg.Extractor.ResourceAliases["svc"])
	}
	if cfg.Extractor.Categories["h.helm.md"] != "Helm" {
		t.Fatalf("expected helm category, got %q", cfg.Extractor.Categories["h.helm.md"])
	}
}

func TestValidateRequiresInputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extractor.InputDir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrExtractorInputDirRequired) {
		t.Fatalf("expected input dir error, got %v", err)
	}
}

func TestValidateRequiresOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extractor.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrExtractorOutputDirRequired) {
		t.Fatalf("expected output dir error, got %v", err)
	}
}

func TestValidateRejectsBadIDPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extractor.IDPrefix = "CKAD_"
	if err := cfg.Validate(); !errors.Is(err, ErrExtractorIDPrefixInvalid) {
		t.Fatalf("expected id prefix error, got %v", err)
	}
}

func TestValidateRejectsNonPositiveStartID(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extractor.StartID = 0
	if err := cfg.Validate(); !errors.Is(err, ErrExtractorStartIDInvalid) {
		t.Fatalf("expected start id error, got %v", err)
	}
}

func TestValidateRejectsEmptyNamespaceList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalizer.Namespaces = nil
	if err := cfg.Validate(); !errors.Is(err, ErrNormalizerNamespacesRequired) {
		t.Fatalf("expected namespaces error, got %v", err)
	}
}

func TestValidateRejectsDuplicateNamespaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalizer.Namespaces = []string{"saturn", "saturn"}
	if err := cfg.Validate(); !errors.Is(err, ErrNormalizerNamespaceDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestValidateRejectsUppercaseNamespace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normalizer.Namespaces = []string{"Saturn"}
	if err := cfg.Validate(); !errors.Is(err, ErrNormalizerNamespaceInvalid) {
		t.Fatalf("expected invalid namespace error, got %v", err)
	}
}

func TestValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected logging provider error, got %v", err)
	}
}

func TestValidateAllowsNoopLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "noop"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected noop provider accepted, got %v", err)
	}
}

func TestValidateRejectsUnknownLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected logging level error, got %v", err)
	}
}

func TestValidateRejectsUnknownLoggingFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected logging format error, got %v", err)
	}
}
