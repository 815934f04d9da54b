package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"reelplan/internal/config"
	"reelplan/internal/schedule"
	"reelplan/internal/services"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("REELPLAN_LLM_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultsExpandPaths(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "reelplan", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if want := filepath.Join(home, ".local", "share", "reelplan", "output"); cfg.Paths.OutputDir != want {
		t.Fatalf("output dir = %q, want %q", cfg.Paths.OutputDir, want)
	}
	if want := filepath.Join(home, ".local", "share", "reelplan", "reelplan.db"); cfg.DatabasePath() != want {
		t.Fatalf("database path = %q, want %q", cfg.DatabasePath(), want)
	}
	if cfg.LLM.APIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.LLM.APIKey)
	}
	if cfg.Search.TopK != 5 {
		t.Fatalf("top_k = %d", cfg.Search.TopK)
	}

	opts, err := cfg.ScheduleOptions()
	if err != nil {
		t.Fatalf("ScheduleOptions: %v", err)
	}
	if opts != schedule.DefaultOptions() {
		t.Fatalf("default schedule options differ from allocator defaults: %+v", opts)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.DataDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "reelplan.toml")

	type payload struct {
		Parser struct {
			ExtraBlacklist []string `toml:"extra_blacklist"`
		} `toml:"parser"`
		Schedule struct {
			WorkdayStart string `toml:"workday_start"`
			LunchAt      string `toml:"lunch_at"`
			LunchMinutes int    `toml:"lunch_minutes"`
			LunchPolicy  string `toml:"lunch_policy"`
		} `toml:"schedule"`
		Props struct {
			Lexicon []string `toml:"lexicon"`
		} `toml:"props"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Parser.ExtraBlacklist = []string{" continued ", "CONTINUED", "more"}
	custom.Schedule.WorkdayStart = "07:00"
	custom.Schedule.LunchAt = "12:30"
	custom.Schedule.LunchMinutes = 45
	custom.Schedule.LunchPolicy = " ONCE "
	custom.Props.Lexicon = []string{"Steadicam", "steadicam", "  "}
	custom.Logging.Format = "JSON"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution %q exists=%v", resolved, exists)
	}
	if got := strings.Join(cfg.Parser.ExtraBlacklist, ","); got != "CONTINUED,MORE" {
		t.Fatalf("extra blacklist = %q", got)
	}
	if got := strings.Join(cfg.Props.Lexicon, ","); got != "steadicam" {
		t.Fatalf("lexicon = %q", got)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging format = %q", cfg.Logging.Format)
	}
	opts, err := cfg.ScheduleOptions()
	if err != nil {
		t.Fatalf("ScheduleOptions: %v", err)
	}
	if opts.WorkdayStart.String() != "07:00" || opts.LunchAt.String() != "12:30" {
		t.Fatalf("unexpected clocks %s %s", opts.WorkdayStart, opts.LunchAt)
	}
	if opts.LunchDuration != 45*time.Minute || opts.LunchPolicy != schedule.LunchOnce {
		t.Fatalf("unexpected lunch settings %+v", opts)
	}
	if opts.MaxHoursPerDay != 10 {
		t.Fatalf("unset fields should keep defaults, got max hours %d", opts.MaxHoursPerDay)
	}
}

func TestLoadProjectFile(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("reelplan.toml", []byte("[search]\ntop_k = 9\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "reelplan.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if cfg.Search.TopK != 9 {
		t.Fatalf("top_k = %d", cfg.Search.TopK)
	}
}

func TestLoadAPIKeyFallbacks(t *testing.T) {
	t.Run("reelplan env wins", func(t *testing.T) {
		isolate(t)
		t.Setenv("REELPLAN_LLM_API_KEY", "primary")
		t.Setenv("OPENROUTER_API_KEY", "secondary")
		cfg, _, _, err := config.Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.LLM.APIKey != "primary" {
			t.Fatalf("api key = %q", cfg.LLM.APIKey)
		}
	})
	t.Run("openrouter env", func(t *testing.T) {
		isolate(t)
		t.Setenv("OPENROUTER_API_KEY", "secondary")
		cfg, _, _, err := config.Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.LLM.APIKey != "secondary" || !cfg.LLMConfig().Enabled() {
			t.Fatalf("api key = %q", cfg.LLM.APIKey)
		}
	})
	t.Run("dotenv file", func(t *testing.T) {
		isolate(t)
		os.Unsetenv("REELPLAN_LLM_API_KEY")
		if err := os.WriteFile(".env", []byte("REELPLAN_LLM_API_KEY=from-dotenv\n"), 0o600); err != nil {
			t.Fatalf("write .env: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("REELPLAN_LLM_API_KEY") })
		cfg, _, _, err := config.Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.LLM.APIKey != "from-dotenv" {
			t.Fatalf("api key = %q", cfg.LLM.APIKey)
		}
	})
}

func TestValidateRejectsBadSchedule(t *testing.T) {
	tests := map[string]func(*config.Config){
		"bad clock":        func(c *config.Config) { c.Schedule.WorkdayStart = "8am" },
		"lunch before day": func(c *config.Config) { c.Schedule.LunchAt = "07:00" },
		"lunch after day":  func(c *config.Config) { c.Schedule.LunchAt = "18:00" },
		"zero hours":       func(c *config.Config) { c.Schedule.MaxHoursPerDay = 0 },
		"bad policy":       func(c *config.Config) { c.Schedule.LunchPolicy = "never" },
		"zero base hours":  func(c *config.Config) { c.Schedule.BaseHours = 0 },
		"zero top k":       func(c *config.Config) { c.Search.TopK = 0 },
		"bad log format":   func(c *config.Config) { c.Logging.Format = "xml" },
		"bad log level":    func(c *config.Config) { c.Logging.Level = "trace" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadInvalidFileIsConfigurationError(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[schedule]\nmax_hours_per_day = \"ten\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration marker, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path, false); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if err := config.CreateSample(path, false); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if err := config.CreateSample(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
}
