package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Port            int           `mapstructure:"PORT" validate:"min=1,max=65535"`
	OpenAIAPIKey    string        `mapstructure:"OPENAI_API_KEY" validate:"required"`
	OpenAIBaseURL   string        `mapstructure:"OPENAI_BASE_URL" validate:"required,url"`
	OpenAIModel     string        `mapstructure:"OPENAI_MODEL" validate:"required"`
	LogLevel        string        `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	StaticDir       string        `mapstructure:"STATIC_DIR"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("STATIC_DIR", "./static")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values against the `validate` tags on Config and
// reports every failing field in one error.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var msgs []string
	for _, fieldErr := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
