package testsupport

import (
	"path/filepath"
	"testing"

	"reelplan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The log file is disabled unless WithLogDir is applied, and the LLM key is
// blank so Q&A falls back to the retrieval-only answer.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = ""
	cfgVal.LLM.APIKey = ""

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

// WithLogDir enables the log file under the test's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithLLM points the answerer at baseURL with a test key.
func WithLLM(baseURL, model string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.APIKey = "test"
		b.cfg.LLM.BaseURL = baseURL
		if model != "" {
			b.cfg.LLM.Model = model
		}
	}
}

// WithSchedule lets a test adjust the [schedule] section in place.
func WithSchedule(fn func(*config.Schedule)) ConfigOption {
	return func(b *configBuilder) {
		fn(&b.cfg.Schedule)
	}
}

// WithPropsDisabled turns off props tagging.
func WithPropsDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Props.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
