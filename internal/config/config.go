package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"reelplan/internal/schedule"
	"reelplan/internal/services"
	"reelplan/internal/services/llm"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output and state directories.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	DataDir   string `toml:"data_dir"`
	LogDir    string `toml:"log_dir"`
}

// Parser contains screenplay parser settings.
type Parser struct {
	// ExtraBlacklist adds screen-direction terms that must never be read as
	// character cues.
	ExtraBlacklist []string `toml:"extra_blacklist"`
}

// Schedule contains day allocator settings.
type Schedule struct {
	WorkdayStart       string `toml:"workday_start"`
	MaxHoursPerDay     int    `toml:"max_hours_per_day"`
	LunchAt            string `toml:"lunch_at"`
	LunchMinutes       int    `toml:"lunch_minutes"`
	LunchPolicy        string `toml:"lunch_policy"`
	LargeCastThreshold int    `toml:"large_cast_threshold"`
	LargeCastHours     int    `toml:"large_cast_hours"`
	BaseHours          int    `toml:"base_hours"`
}

// Props contains props tagging settings.
type Props struct {
	Enabled bool     `toml:"enabled"`
	Lexicon []string `toml:"lexicon"`
}

// Search contains Q&A retrieval settings.
type Search struct {
	TopK int `toml:"top_k"`
}

// LLM contains chat-completion connection settings for the Q&A answerer.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for reelplan.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Parser   Parser   `toml:"parser"`
	Schedule Schedule `toml:"schedule"`
	Props    Props    `toml:"props"`
	Search   Search   `toml:"search"`
	LLM      LLM      `toml:"llm"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second and third
// results report the resolved path and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	if err := loadDotEnv(); err != nil {
		return nil, "", false, err
	}
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, services.Wrap(services.ErrConfiguration, "config", "parse", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, services.Wrap(services.ErrConfiguration, "config", "validate", "", err)
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv reads ./.env when present. Variables already set in the
// environment win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat .env: %w", err)
	}
	if err := godotenv.Load(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "load .env", "", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the output, data, and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the SQLite file holding saved runs.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, databaseFileName)
}

// ScheduleOptions converts the [schedule] section into allocator options.
func (c *Config) ScheduleOptions() (schedule.Options, error) {
	start, err := schedule.ParseClock(c.Schedule.WorkdayStart)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("schedule.workday_start: %w", err)
	}
	lunch, err := schedule.ParseClock(c.Schedule.LunchAt)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("schedule.lunch_at: %w", err)
	}
	policy, err := schedule.ParseLunchPolicy(c.Schedule.LunchPolicy)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("schedule.lunch_policy: %w", err)
	}
	return schedule.Options{
		WorkdayStart:       start,
		MaxHoursPerDay:     c.Schedule.MaxHoursPerDay,
		LunchAt:            lunch,
		LunchDuration:      time.Duration(c.Schedule.LunchMinutes) * time.Minute,
		LunchPolicy:        policy,
		LargeCastThreshold: c.Schedule.LargeCastThreshold,
		LargeCastHours:     c.Schedule.LargeCastHours,
		BaseHours:          c.Schedule.BaseHours,
	}, nil
}

// LLMConfig returns the client settings for the Q&A answerer.
func (c *Config) LLMConfig() llm.Config {
	return llm.Config{
		APIKey:         c.LLM.APIKey,
		BaseURL:        c.LLM.BaseURL,
		Model:          c.LLM.Model,
		Referer:        c.LLM.Referer,
		Title:          c.LLM.Title,
		TimeoutSeconds: c.LLM.TimeoutSeconds,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is left untouched unless overwrite is set.
func CreateSample(path string, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return services.Wrap(services.ErrValidation, "config", "init", fmt.Sprintf("%s already exists", path), nil)
		}
		return fmt.Errorf("write sample config: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(sampleConfig); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
