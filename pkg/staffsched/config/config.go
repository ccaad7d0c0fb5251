// Package config loads the file locations and output options of the
// schedule generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/models"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STAFFSCHED_"

// Config holds the generator settings.
type Config struct {
	// Dir holds both the template and the generated schedule.
	Dir          string `yaml:"dir" env:"DIR" validate:"required"`
	TemplateFile string `yaml:"template_file" env:"TEMPLATE_FILE" validate:"required,endswith=.xlsx,excludesall=/\\"`
	OutputFile   string `yaml:"output_file" env:"OUTPUT_FILE" validate:"required,endswith=.xlsx,excludesall=/\\"`
	// EmptyCellText replaces unset template cells; empty drops them.
	EmptyCellText string `yaml:"empty_cell_text" env:"EMPTY_CELL_TEXT"`

	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings: both files on the user's desktop.
func Default() *Config {
	return &Config{
		Dir:           desktopDir(),
		TemplateFile:  "Staff Schedule - Template.xlsx",
		OutputFile:    "Staff Schedule.xlsx",
		EmptyCellText: models.DefaultEmptyCellText,
		Logging:       LoggingConfig{Level: "warn"},
	}
}

func desktopDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
}

// Load builds the configuration from defaults, the optional YAML file at
// path, and STAFFSCHED_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	// env skips variables set to "", which is how blank mode is requested.
	if v, ok := os.LookupEnv(EnvPrefix + "EMPTY_CELL_TEXT"); ok && v == "" {
		cfg.EmptyCellText = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns the first invalid field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config %s: %q fails %q", fe.Namespace(), fe.Value(), fe.Tag())
	}
	return err
}

// TemplatePath is the full path of the template workbook.
func (c *Config) TemplatePath() string {
	return filepath.Join(c.Dir, c.TemplateFile)
}

// OutputPath is the full path of the generated schedule.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Dir, c.OutputFile)
}
