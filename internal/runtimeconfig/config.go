package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrExtractorInputDirRequired indicates the extractor has no source directory.
var ErrExtractorInputDirRequired = errors.New("questionbank config: extractor input directory is required")

// ErrExtractorOutputDirRequired indicates the extractor has nowhere to write records.
var ErrExtractorOutputDirRequired = errors.New("questionbank config: extractor output directory is required")
var ErrExtractorIDPrefixInvalid = errors.New("questionbank config: extractor id prefix is invalid")
var ErrExtractorStartIDInvalid = errors.New("questionbank config: extractor start id must be positive")
var ErrExtractorPointsInvalid = errors.New("questionbank config: extractor default points must be positive")
var ErrExtractorTimeLimitInvalid = errors.New("questionbank config: extractor default time limit must be positive")
var ErrNormalizerNamespacesRequired = errors.New("questionbank config: normalizer namespace list must not be empty")
var ErrNormalizerNamespaceInvalid = errors.New("questionbank config: normalizer namespace is invalid")
var ErrNormalizerNamespaceDuplicate = errors.New("questionbank config: normalizer namespace list contains duplicates")
var ErrLoggingProviderUnknown = errors.New("questionbank config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("questionbank config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("questionbank config: logging format is invalid")

// idPrefixPattern keeps generated ids inside the question id grammar
// (lowercase slug, trailing dash, number appended by the extractor).
var idPrefixPattern = regexp.MustCompile(`^[a-z0-9-]+-$`)

// namespacePattern matches Kubernetes namespace naming rules as the
// rewrite engine understands them.
var namespacePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Config aggregates the settings for both question bank tools. Fields use
// simple types so host applications can populate them from any source.
type Config struct {
	Extractor  ExtractorConfig
	Normalizer NormalizerConfig
	Logging    LoggingConfig
}

// ExtractorConfig controls the markdown to JSON extraction pass.
type ExtractorConfig struct {
	InputDir         string
	OutputDir        string
	Pattern          string
	Recursive        bool
	IDPrefix         string
	StartID          int
	DefaultPoints    int
	DefaultTimeLimit int
	Difficulty       string
	DefaultNamespace string
	ResourceAliases  map[string]string
	Categories       map[string]string
}

// NormalizerConfig controls the namespace assignment pass.
type NormalizerConfig struct {
	Namespaces []string
}

// LoggingConfig wires the go-logger provider options.
type LoggingConfig struct {
	// Provider selects the logging backend: "gologger" or "noop".
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the settings used to build the intermediate CKAD
// question bank: resource keyword aliases, per-file categories and the
// planet namespace rotation.
func DefaultConfig() Config {
	return Config{
		Extractor: ExtractorConfig{
			InputDir:         "./CKAD-exercises",
			OutputDir:        "./question-bank-intermediate",
			Pattern:          "*.md",
			IDPrefix:         "ckad-i-",
			StartID:          101,
			DefaultPoints:    6,
			DefaultTimeLimit: 10,
			Difficulty:       "intermediate",
			DefaultNamespace: "default",
			ResourceAliases: map[string]string{
				"pod":        "pods",
				"pods":       "pods",
				"deployment": "deployments",
				"deploy":     "deployments",
				"configmap":  "configmaps",
				"secret":     "secrets",
				"service":    "services",
				"svc":        "services",
				"ingress":    "ingresses",
				"namespace":  "namespaces",
				"quota":      "resourcequotas",
				"hpa":        "horizontalpodautoscalers",
				"cronjob":    "cronjobs",
				"job":        "jobs",
				"pvc":        "persistentvolumeclaims",
				"pv":         "persistentvolumes",
			},
			Categories: map[string]string{
				"a.core_concepts.md":        "Core Concepts",
				"b.multi_container_pods.md": "Multi-Container Pods",
				"c.pod_design.md":           "Pod Design",
				"d.configuration.md":        "Configuration",
				"e.observability.md":        "Observability",
				"f.services.md":             "Services and Networking",
				"g.state.md":                "State Persistence",
				"h.helm.md":                 "Helm",
				"i.crd.md":                  "Custom Resources",
				"j.podman.md":               "Container Management",
			},
		},
		Normalizer: NormalizerConfig{
			Namespaces: []string{
				"saturn",
				"venus",
				"pluto",
				"mars",
				"mercury",
				"jupiter",
				"uranus",
				"neptune",
			},
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate reports the first configuration problem it finds.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Extractor.InputDir) == "" {
		return ErrExtractorInputDirRequired
	}
	if strings.TrimSpace(cfg.Extractor.OutputDir) == "" {
		return ErrExtractorOutputDirRequired
	}
	if prefix := cfg.Extractor.IDPrefix; prefix != "" && !idPrefixPattern.MatchString(prefix) {
		return fmt.Errorf("%w: %q", ErrExtractorIDPrefixInvalid, prefix)
	}
	if cfg.Extractor.StartID <= 0 {
		return fmt.Errorf("%w: %d", ErrExtractorStartIDInvalid, cfg.Extractor.StartID)
	}
	if cfg.Extractor.DefaultPoints <= 0 {
		return fmt.Errorf("%w: %d", ErrExtractorPointsInvalid, cfg.Extractor.DefaultPoints)
	}
	if cfg.Extractor.DefaultTimeLimit <= 0 {
		return fmt.Errorf("%w: %d", ErrExtractorTimeLimitInvalid, cfg.Extractor.DefaultTimeLimit)
	}
	if len(cfg.Normalizer.Namespaces) == 0 {
		return ErrNormalizerNamespacesRequired
	}
	seen := make(map[string]struct{}, len(cfg.Normalizer.Namespaces))
	for _, ns := range cfg.Normalizer.Namespaces {
		if !namespacePattern.MatchString(ns) {
			return fmt.Errorf("%w: %q", ErrNormalizerNamespaceInvalid, ns)
		}
		if _, dup := seen[ns]; dup {
			return fmt.Errorf("%w: %q", ErrNormalizerNamespaceDuplicate, ns)
		}
		seen[ns] = struct{}{}
	}
	if provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)); provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "json", "pretty":
		return true
	default:
		return false
	}
}
