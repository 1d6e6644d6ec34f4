// Package config loads the application configuration from an optional YAML
// file, a .env file and ADVISOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/advisor"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Narrator providers.
const (
	ProviderTemplate = "template"
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
)

// Config holds application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Currency string         `mapstructure:"currency"`
	Narrator NarratorConfig `mapstructure:"narrator"`
	OpenAI   KeyConfig      `mapstructure:"openai"`
	Gemini   KeyConfig      `mapstructure:"gemini"`
	Server   ServerConfig   `mapstructure:"server"`

	// Overrides of the built-in tables.
	Assumptions    map[string]advisor.Assumption `mapstructure:"assumptions"`
	Returns        []SecurityReturn              `mapstructure:"returns"`
	FallbackReturn float64                       `mapstructure:"fallback_return"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type NarratorConfig struct {
	Provider  string        `mapstructure:"provider"` // template, gemini or openai
	Model     string        `mapstructure:"model"`
	ChatModel string        `mapstructure:"chat_model"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type KeyConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type ServerConfig struct {
	Port    int  `mapstructure:"port"`
	DevMode bool `mapstructure:"dev_mode"`
}

// SecurityReturn overrides the expected return of one symbol. Symbols are a
// list rather than a map because they contain dots.
type SecurityReturn struct {
	Symbol string  `mapstructure:"symbol"`
	Return float64 `mapstructure:"return"`
}

// Load reads the configuration.
//
// When file is empty, "advisor.yaml" is searched in the working directory and
// in ~/.advisor; a missing file is not an error. Environment variables
// override file values, format ADVISOR_<SECTION>_<KEY>, e.g.
// ADVISOR_NARRATOR_PROVIDER.
func Load(file string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("advisor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".advisor"))
		}
	}
	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("currency", advisor.DefaultCurrency)
	v.SetDefault("narrator.provider", ProviderTemplate)
	v.SetDefault("narrator.model", "")
	v.SetDefault("narrator.chat_model", "")
	v.SetDefault("narrator.timeout", 20*time.Second)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("fallback_return", 0)
}

// overrideFromEnv picks the provider credentials from their conventional
// variables when the configuration does not set them.
func overrideFromEnv(cfg *Config) {
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if os.Getenv("MOCK_AI") == "true" {
		cfg.Narrator.Provider = ProviderTemplate
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	switch c.Narrator.Provider {
	case ProviderTemplate, ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown narrator provider %q", c.Narrator.Provider)
	}
	if c.Narrator.Timeout <= 0 {
		return fmt.Errorf("narrator timeout must be positive, got %v", c.Narrator.Timeout)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	for tier := range c.Assumptions {
		if _, err := advisor.ParseRiskTolerance(tier); err != nil {
			return fmt.Errorf("assumptions: %w", err)
		}
	}
	for _, r := range c.Returns {
		if r.Symbol == "" {
			return fmt.Errorf("returns: missing symbol")
		}
	}
	return nil
}

// Tables builds the analysis tables: the defaults with this configuration's
// overrides applied. It is meant to be called once at process start.
func (c *Config) Tables() advisor.Tables {
	var returns map[string]float64
	if len(c.Returns) > 0 {
		returns = make(map[string]float64, len(c.Returns))
		for _, r := range c.Returns {
			returns[r.Symbol] = r.Return
		}
	}
	var assumptions map[advisor.RiskTolerance]advisor.Assumption
	if len(c.Assumptions) > 0 {
		assumptions = make(map[advisor.RiskTolerance]advisor.Assumption, len(c.Assumptions))
		for tier, a := range c.Assumptions {
			// validated
			r, _ := advisor.ParseRiskTolerance(tier)
			assumptions[r] = a
		}
	}
	return advisor.DefaultTables().WithOverrides(returns, assumptions, c.FallbackReturn)
}
