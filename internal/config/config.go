// Package config resolves runtime settings from defaults, an optional YAML
// file and environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultWordLength       = 5
	DefaultMaxGuesses       = 6
	DefaultDailySalt        = "local_dev_salt"
	DefaultShareSecret      = "dev_secret_change_me"
	DefaultShareExpiresDays = 14
	DefaultLogLevel         = "info"
)

// Config holds every tunable setting.
type Config struct {
	WordLength       int    `yaml:"word_length" validate:"min=1,max=32"`
	MaxGuesses       int    `yaml:"max_guesses" validate:"min=1,max=100"`
	AnswersFile      string `yaml:"answers_file"`
	AllowedFile      string `yaml:"allowed_file" validate:"required_with=AnswersFile"`
	WordsDB          string `yaml:"words_db"`
	DailySalt        string `yaml:"daily_salt" validate:"required"`
	ShareSecret      string `yaml:"share_secret" validate:"required"`
	ShareExpiresDays int    `yaml:"share_expires_days" validate:"min=0"`
	LogLevel         string `yaml:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		WordLength:       DefaultWordLength,
		MaxGuesses:       DefaultMaxGuesses,
		DailySalt:        DefaultDailySalt,
		ShareSecret:      DefaultShareSecret,
		ShareExpiresDays: DefaultShareExpiresDays,
		LogLevel:         DefaultLogLevel,
	}
}

// ShareTTL is the lifetime of shared puzzle tokens; zero means no expiry.
func (c Config) ShareTTL() time.Duration {
	return time.Duration(c.ShareExpiresDays) * 24 * time.Hour
}

// Load builds a Config. path may be empty; a missing file is an error only
// when path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"WORDS_ANSWERS_FILE": &cfg.AnswersFile,
		"WORDS_ALLOWED_FILE": &cfg.AllowedFile,
		"WORDS_DB":           &cfg.WordsDB,
		"DAILY_SALT":         &cfg.DailySalt,
		"JWT_SECRET":         &cfg.ShareSecret,
		"LOG_LEVEL":          &cfg.LogLevel,
	}
	for k, dst := range strs {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"WORD_LENGTH":      &cfg.WordLength,
		"MAX_GUESSES":      &cfg.MaxGuesses,
		"JWT_EXPIRES_DAYS": &cfg.ShareExpiresDays,
	}
	for k, dst := range ints {
		v := os.Getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", k, err)
		}
		*dst = n
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fe := verrs[0]
		return fmt.Errorf("config: %s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return err
}
