package config

import (
	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

/**
 * Server configuration parameters
 * @property {string} address - Server listening address (e.g. ":8080")
 * @property {string} mode - Application mode (debug/release/test)
 */
type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
	Mode    string `mapstructure:"mode" validate:"oneof=debug release test"`
}

/**
 * Logging configuration
 * @property {string} level - Log level (debug/info/warn/error)
 * @property {string} path - Log file path, "console" for stdout
 */
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Path  string `mapstructure:"path"`
}

/**
 * Metrics configuration
 * @property {*bool} enabled - Whether /metrics is served; a pointer so an
 *   explicit false in config.yaml survives default filling (mergo treats
 *   a zero-valued bool as unset, a nil pointer is the real unset marker)
 */
type MetricsConfig struct {
	Enabled *bool `mapstructure:"enabled"`
}

/**
 * IsEnabled reports whether /metrics should be served.
 */
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled != nil && *m.Enabled
}

/**
 * Resolver configuration
 * @property {string} profile - Default profile when none is requested
 * @property {string} format - Default emit format (json/yaml)
 */
type ResolveConfig struct {
	Profile string `mapstructure:"profile" validate:"oneof=minimal workstation server"`
	Format  string `mapstructure:"format" validate:"oneof=json yaml"`
}

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Resolve ResolveConfig `mapstructure:"resolve"`
}

func defaultConfig() AppConfig {
	enabled := true
	return AppConfig{
		Server:  ServerConfig{Address: ":8721", Mode: "release"},
		Log:     LogConfig{Level: "info", Path: "console"},
		Metrics: MetricsConfig{Enabled: &enabled},
		Resolve: ResolveConfig{Profile: "workstation", Format: "json"},
	}
}

/**
 * Load application configuration from YAML file
 * @returns {*AppConfig, error} Parsed config with defaults filled in
 * @description
 * - Reads config.yaml from the working directory via viper
 * - A missing file is not an error; defaults apply
 * - Defaults merge into the loaded struct, then struct tags validate the
 *   result
 */
func LoadConfig() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	var cfg AppConfig
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
	}

	defaults := defaultConfig()
	// WithoutDereference keeps a non-nil pointer final: without it mergo
	// follows the pointer and fills a pointed-to false from the default
	if err := mergo.Merge(&cfg, defaults, mergo.WithoutDereference); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var Config AppConfig

func init() {
	cfg, err := LoadConfig()
	if err != nil {
		fallback := defaultConfig()
		cfg = &fallback
	}
	Config = *cfg
}
