package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
)

// DefaultConfigFile is the build configuration read when -c is not given.
const DefaultConfigFile = "vados.yaml"

// Config is the build configuration: where the site sources live, where
// the output goes and how the build runs.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Images  ImagesConfig  `yaml:"images"`
	Output  OutputConfig  `yaml:"output"`
	Build   BuildConfig   `yaml:"build"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
	Report  ReportConfig  `yaml:"report,omitempty"`
}

// SourceConfig locates the content tree (main.json, menu.json and one
// directory per page).
type SourceConfig struct {
	Directory  string            `yaml:"directory" validate:"required"`
	Repository *RepositoryConfig `yaml:"repository,omitempty"`
}

// RepositoryConfig makes the build clone the content tree first. Directory
// is then resolved inside the clone.
type RepositoryConfig struct {
	URL    string `yaml:"url" validate:"required"`
	Branch string `yaml:"branch,omitempty"`
	Depth  int    `yaml:"depth,omitempty" validate:"gte=0"`
	// Token authenticates HTTPS clones, usually given as ${GIT_TOKEN}.
	Token string `yaml:"token,omitempty"`
}

// ImagesConfig locates the image tree (images.json per directory).
type ImagesConfig struct {
	Directory string `yaml:"directory,omitempty"`
	URLPrefix string `yaml:"url_prefix,omitempty" validate:"omitempty,startswith=/"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory" validate:"required"`
	Clean     bool   `yaml:"clean"`
	Minify    *bool  `yaml:"minify,omitempty"`
}

// MinifyEnabled reports whether HTML output is minified (default true).
func (o OutputConfig) MinifyEnabled() bool {
	return o.Minify == nil || *o.Minify
}

// BuildConfig tunes the worker pools.
type BuildConfig struct {
	Workers int `yaml:"workers,omitempty" validate:"gte=0"`
}

// MetricsConfig enables a Prometheus text-format dump at the end of a build.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// ReportConfig enables the JSON build report.
type ReportConfig struct {
	File string `yaml:"file,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads, expands and validates the build configuration at configPath.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		// .env files are optional
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read configuration file").
			WithContext("path", configPath).
			Build()
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "configuration is not valid YAML").
			Fatal().
			Build()
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Images.URLPrefix == "" {
		c.Images.URLPrefix = "/img"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./public"
	}
	if c.Build.Workers == 0 {
		c.Build.Workers = runtime.NumCPU()
	}
	if c.Source.Repository != nil && c.Source.Directory == "" {
		c.Source.Directory = "."
	}
}

// Validate checks the struct tags of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid configuration").
			Fatal().
			Build()
	}
	return nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		Source: SourceConfig{Directory: "./content"},
		Images: ImagesConfig{Directory: "./images", URLPrefix: "/img"},
		Output: OutputConfig{Directory: "./public"},
		Build:  BuildConfig{Workers: 4},
		Report: ReportConfig{File: "./public/build-report.json"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write configuration file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
