package testsupport

import (
	"path/filepath"
	"testing"

	"photostrip/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Dir = filepath.Join(base, "output")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithJPEGQuality overrides the output JPEG quality.
func WithJPEGQuality(quality int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.JPEGQuality = quality
	}
}

// WithBackgroundAlpha overrides the caption strip alpha.
func WithBackgroundAlpha(alpha int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Caption.BackgroundAlpha = alpha
	}
}

// WithFont copies the embedded Go Bold TTF into the temp tree and points the
// config at it.
func WithFont() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Caption.FontPath = WriteFont(b.t, filepath.Join(b.baseDir, "fonts", "caption.ttf"))
	}
}

// WithoutLogDir disables file logging.
func WithoutLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Dir)
}
