package questionbank

import "github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/runtimeconfig"

var (
	ErrExtractorInputDirRequired    = runtimeconfig.ErrExtractorInputDirRequired
	ErrExtractorOutputDirRequired   = runtimeconfig.ErrExtractorOutputDirRequired
	ErrExtractorIDPrefixInvalid     = runtimeconfig.ErrExtractorIDPrefixInvalid
	ErrExtractorStartIDInvalid      = runtimeconfig.ErrExtractorStartIDInvalid
	ErrExtractorPointsInvalid       = runtimeconfig.ErrExtractorPointsInvalid
	ErrExtractorTimeLimitInvalid    = runtimeconfig.ErrExtractorTimeLimitInvalid
	ErrNormalizerNamespacesRequired = runtimeconfig.ErrNormalizerNamespacesRequired
	ErrNormalizerNamespaceInvalid   = runtimeconfig.ErrNormalizerNamespaceInvalid
	ErrNormalizerNamespaceDuplicate = runtimeconfig.ErrNormalizerNamespaceDuplicate
	ErrLoggingProviderUnknown       = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid          = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid         = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	ExtractorConfig  = runtimeconfig.ExtractorConfig
	NormalizerConfig = runtimeconfig.NormalizerConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the settings used to build the intermediate CKAD
// question bank.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
