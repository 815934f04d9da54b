package config

const (
	defaultConfigPath         = "~/.config/reelplan/config.toml"
	projectConfigName         = "reelplan.toml"
	databaseFileName          = "reelplan.db"
	defaultOutputDir          = "~/.local/share/reelplan/output"
	defaultDataDir            = "~/.local/share/reelplan"
	defaultLogDir             = "~/.local/share/reelplan/logs"
	defaultWorkdayStart       = "08:00"
	defaultMaxHoursPerDay     = 10
	defaultLunchAt            = "13:00"
	defaultLunchMinutes       = 60
	defaultLunchPolicy        = "exact"
	defaultLargeCastThreshold = 2
	defaultLargeCastHours     = 2
	defaultBaseHours          = 1
	defaultTopK               = 5
	defaultLLMBaseURL         = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel           = "mistralai/mistral-small-3.2-24b-instruct"
	defaultLLMTitle           = "reelplan"
	defaultLLMTimeoutSeconds  = 60
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
		},
		Schedule: Schedule{
			WorkdayStart:       defaultWorkdayStart,
			MaxHoursPerDay:     defaultMaxHoursPerDay,
			LunchAt:            defaultLunchAt,
			LunchMinutes:       defaultLunchMinutes,
			LunchPolicy:        defaultLunchPolicy,
			LargeCastThreshold: defaultLargeCastThreshold,
			LargeCastHours:     defaultLargeCastHours,
			BaseHours:          defaultBaseHours,
		},
		Props: Props{
			Enabled: true,
		},
		Search: Search{
			TopK: defaultTopK,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
