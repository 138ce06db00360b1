package config

import (
	"fmt"
	"log/slog"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Input  InputConfig  `mapstructure:"input"`
	Oracle OracleConfig `mapstructure:"oracle"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

type SolverConfig struct {
	Epsilon               float64 `mapstructure:"epsilon" validate:"gt=0,lt=1"`
	NormalizeNegativeZero bool    `mapstructure:"normalize_negative_zero"`
}

type InputConfig struct {
	// MaxAttempts is the number of tries for each coefficient. 0 means unbounded.
	MaxAttempts uint `mapstructure:"max_attempts"`
}

type OracleConfig struct {
	TestsFile  string  `mapstructure:"tests_file" validate:"required"`
	Tolerance  float64 `mapstructure:"tolerance" validate:"gt=0,lt=1"`
	ReportFile string  `mapstructure:"report_file" validate:"omitempty,report"`
	// ReportTemplate overrides the embedded markdown template of reports
	ReportTemplate string `mapstructure:"report_template" validate:"omitempty,file"`
}

type OutputConfig struct {
	Color string `mapstructure:"color" validate:"oneof=auto always never"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vietta")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("solver.epsilon", 1e-9)
	v.SetDefault("solver.normalize_negative_zero", true)
	v.SetDefault("input.max_attempts", 0)
	v.SetDefault("oracle.tests_file", "tests.txt")
	v.SetDefault("oracle.tolerance", 1e-6)
	v.SetDefault("oracle.report_file", "")
	v.SetDefault("oracle.report_template", "")
	v.SetDefault("output.color", "auto")
	v.SetDefault("log.debug", false)

	if err := v.BindEnv("oracle.tests_file", "VIETTA_TESTS_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind VIETTA_TESTS_FILE environment variable: %w", err)
	}
	if err := v.BindEnv("output.color", "VIETTA_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind VIETTA_COLOR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	} else {
		slog.Default().Debug("loaded configuration file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
