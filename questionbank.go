// Package questionbank assembles the offline tooling that turns exercise
// markdown into question bank JSON and rotates the placeholder namespaces
// those questions run in.
package questionbank

import (
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/extractor"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/logging"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/normalizer"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/pkg/interfaces"
)

// ExtractorService exports the markdown extraction contract.
type ExtractorService = interfaces.ExtractorService

// NormalizerService exports the namespace normalization contract.
type NormalizerService = interfaces.NormalizerService

// Module is the top level runtime façade: it owns the configured services
// and the logger provider they report through.
type Module struct {
	cfg        Config
	provider   interfaces.LoggerProvider
	extractor  interfaces.ExtractorService
	normalizer interfaces.NormalizerService
}

// Option overrides a dependency during module construction.
type Option func(*Module)

// WithLoggerProvider routes service logging through the given provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithExtractorService replaces the default extractor implementation.
func WithExtractorService(svc interfaces.ExtractorService) Option {
	return func(m *Module) {
		m.extractor = svc
	}
}

// WithNormalizerService replaces the default normalizer implementation.
func WithNormalizerService(svc interfaces.NormalizerService) Option {
	return func(m *Module) {
		m.normalizer = svc
	}
}

// New validates the configuration and wires the services. Overrides passed
// as options win over the built-in implementations.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.extractor == nil {
		svc, err := extractor.NewService(extractor.Config{
			InputDir:         cfg.Extractor.InputDir,
			OutputDir:        cfg.Extractor.OutputDir,
			Pattern:          cfg.Extractor.Pattern,
			Recursive:        cfg.Extractor.Recursive,
			IDPrefix:         cfg.Extractor.IDPrefix,
			StartID:          cfg.Extractor.StartID,
			DefaultPoints:    cfg.Extractor.DefaultPoints,
			DefaultTimeLimit: cfg.Extractor.DefaultTimeLimit,
			Difficulty:       cfg.Extractor.Difficulty,
			DefaultNamespace: cfg.Extractor.DefaultNamespace,
			ResourceAliases:  cfg.Extractor.ResourceAliases,
			Categories:       cfg.Extractor.Categories,
		}, logging.ExtractorLogger(m.provider))
		if err != nil {
			return nil, err
		}
		m.extractor = svc
	}

	if m.normalizer == nil {
		svc, err := normalizer.NewService(normalizer.Config{
			Namespaces: cfg.Normalizer.Namespaces,
		}, logging.NormalizerLogger(m.provider))
		if err != nil {
			return nil, err
		}
		m.normalizer = svc
	}

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Extractor returns the configured extraction service.
func (m *Module) Extractor() interfaces.ExtractorService {
	return m.extractor
}

// Normalizer returns the configured normalization service.
func (m *Module) Normalizer() interfaces.NormalizerService {
	return m.normalizer
}

// LoggerProvider returns the provider services log through; nil when the
// module runs silent.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}
