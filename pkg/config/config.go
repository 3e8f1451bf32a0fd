// Package config provides configuration loading and validation for iconpack.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/iconpack/pkg/codegen"
)

// Sentinel validation errors.
var (
	ErrInvalidWorkers     = errors.New("build workers must not be negative")
	ErrMissingOutputDir   = errors.New("build output directory is required")
	ErrMissingBasename    = errors.New("svgl archive basename is required")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
	ErrInvalidSampleRatio = errors.New("telemetry sample ratio must be within [0, 1]")
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for iconpack.
type Config struct {
	Build     BuildConfig     `mapstructure:"build"`
	Codegen   CodegenConfig   `mapstructure:"codegen"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// BuildConfig controls the archive build.
type BuildConfig struct {
	// IconSetsDir holds JSON bundles (read non-recursively). Empty skips them.
	IconSetsDir string `mapstructure:"iconsets_dir"`
	// SvglDir holds standalone SVG files (read recursively). Empty skips them.
	SvglDir      string `mapstructure:"svgl_dir"`
	OutputDir    string `mapstructure:"output_dir"`
	SvglBasename string `mapstructure:"svgl_basename"`
	Workers      int    `mapstructure:"workers"`
	Compress     bool   `mapstructure:"compress"`
	Manifest     bool   `mapstructure:"manifest"`
}

// CodegenConfig holds defaults for component generation.
type CodegenConfig struct {
	Framework  string `mapstructure:"framework"`
	TypeScript bool   `mapstructure:"typescript"`
	Snippet    bool   `mapstructure:"snippet"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP gRPC collector address. Empty disables export.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	// OTLPHeaders uses the "key=value,key=value" form.
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	Environment  string  `mapstructure:"environment"`
}

// SlogLevel converts the configured level name.
func (l LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level

	// Validated by LoadConfig; an unknown name keeps the zero value (INFO).
	_ = level.UnmarshalText([]byte(l.Level))

	return level
}

// JSON reports whether logs are written as JSON.
func (l LoggingConfig) JSON() bool {
	return strings.EqualFold(l.Format, LogFormatJSON)
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("iconpack")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/iconpack")
	}

	viperCfg.SetEnvPrefix("ICONPACK")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Build.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Build.Workers)
	}

	if strings.TrimSpace(config.Build.OutputDir) == "" {
		return ErrMissingOutputDir
	}

	if strings.TrimSpace(config.Build.SvglBasename) == "" {
		return ErrMissingBasename
	}

	_, err := codegen.ParseFramework(config.Codegen.Framework)
	if err != nil {
		return err
	}

	var level slog.Level

	err = level.UnmarshalText([]byte(config.Logging.Level))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch strings.ToLower(config.Logging.Format) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, config.Telemetry.SampleRatio)
	}

	return nil
}
