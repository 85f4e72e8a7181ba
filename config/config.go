package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Planner core
	Planner PlannerConfig

	// Calendar collaborators
	GoogleCalendar GoogleCalendarConfig
	ICS            ICSConfig

	// Rule text sources
	Rules  RulesConfig
	Notion NotionConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type PlannerConfig struct {
	DefaultTimeZone string // applied by the HTTP layer when a request omits time_zone
	MaxInputLength  int
}

type GoogleCalendarConfig struct {
	CredentialsPath  string
	TokenPath        string
	CalendarID       string
	InsertRatePerSec float64
}

type ICSConfig struct {
	URLs    []string
	Timeout time.Duration
}

type RulesConfig struct {
	Path string
}

type NotionConfig struct {
	APIKey   string
	PageID   string
	BaseURL  string
	CacheTTL time.Duration
	MaxChars int
}

// Enabled reports whether Notion is configured as a rules source.
func (c NotionConfig) Enabled() bool {
	return c.APIKey != "" && c.PageID != ""
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // budget for the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Planner
	cfg.Planner.DefaultTimeZone = strings.TrimSpace(v.GetString("planner.default_timezone"))
	cfg.Planner.MaxInputLength = v.GetInt("planner.max_input_length")

	// Calendars
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.InsertRatePerSec = v.GetFloat64("google_calendar.insert_rate_per_sec")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.ICS.URLs = splitList(v.Get("ics.urls"))
	cfg.ICS.Timeout = v.GetDuration("ics.timeout")

	// Rules
	cfg.Rules.Path = v.GetString("rules.path")
	cfg.Notion.APIKey = expandEnvVar(v, v.GetString("notion.api_key"))
	cfg.Notion.PageID = v.GetString("notion.page_id")
	cfg.Notion.BaseURL = v.GetString("notion.base_url")
	cfg.Notion.CacheTTL = v.GetDuration("notion.cache_ttl")
	cfg.Notion.MaxChars = v.GetInt("notion.max_chars")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getDurationFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("planner.default_timezone", "UTC")
	v.SetDefault("planner.max_input_length", 4000)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("ics.timeout", "15s")

	v.SetDefault("notion.base_url", "https://api.notion.com/v1")
	v.SetDefault("notion.cache_ttl", "10m")
	v.SetDefault("notion.max_chars", 12000)

	// LLM defaults. Failures surface to the caller; one attempt per provider.
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

func (c *Config) validate() error {
	if c.Planner.DefaultTimeZone == "" || c.Planner.DefaultTimeZone == "Local" {
		return fmt.Errorf("planner.default_timezone must be an IANA zone name")
	}
	if _, err := time.LoadLocation(c.Planner.DefaultTimeZone); err != nil {
		return fmt.Errorf("planner.default_timezone %q: %w", c.Planner.DefaultTimeZone, err)
	}
	if c.Planner.MaxInputLength <= 0 {
		return fmt.Errorf("planner.max_input_length must be positive")
	}
	if c.GoogleCalendar.InsertRatePerSec < 0 {
		return fmt.Errorf("google_calendar.insert_rate_per_sec must not be negative")
	}
	return validateLLMConfig(&c.LLM)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList accepts a YAML list or a comma separated string.
func splitList(raw interface{}) []string {
	var items []string
	switch val := raw.(type) {
	case string:
		items = strings.Split(val, ",")
	case []interface{}:
		for _, it := range val {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	case []string:
		items = val
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

func getDurationFromMap(m map[string]interface{}, key string) time.Duration {
	s := getStringFromMap(m, key)
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
