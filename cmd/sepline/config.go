package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/instance"
	"github.com/katalvlaran/sepline/separate"
)

// Config is the YAML configuration. Command-line flags override it.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Solver    SolverConfig    `yaml:"solver"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// OutputConfig controls solution files.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Prefix    string `yaml:"prefix" validate:"required"`
	Precision int    `yaml:"precision" validate:"gte=0,lte=17"`
	SVG       bool   `yaml:"svg"`
}

// SolverConfig controls the solver.
type SolverConfig struct {
	Capacity int    `yaml:"capacity"` // <= 0 means unbounded
	Optimize string `yaml:"optimize" validate:"oneof=single fixed off"`
	Verify   bool   `yaml:"verify"`
	Jobs     int    `yaml:"jobs" validate:"gte=0"` // 0 means GOMAXPROCS
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"loglevel"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// TelemetryConfig controls metrics and tracing output.
type TelemetryConfig struct {
	MetricsFile string `yaml:"metrics_file"`
	Trace       bool   `yaml:"trace"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir:       ".",
			Prefix:    instance.DefaultPrefix,
			Precision: instance.DefaultPrecision,
		},
		Solver: SolverConfig{
			Capacity: core.DefaultCapacity,
			Optimize: separate.SinglePass.String(),
			Jobs:     1,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected; an
// empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// errInvalidConfig marks a configuration value outside its domain.
var errInvalidConfig = errors.New("invalid configuration")

var configValidate *validator.Validate

func init() {
	v, err := newConfigValidator()
	if err != nil {
		panic(err)
	}
	configValidate = v
}

// newConfigValidator returns a validator with the config's custom tags
// registered.
func newConfigValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return nil, fmt.Errorf("register loglevel: %w", err)
	}

	return v, nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := parseLevel(fl.Field().String())
	return err == nil
}

// Validate checks enumerated and ranged fields. The first failing field is
// reported.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s %q fails %s: %w", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag(), errInvalidConfig)
	}

	return fmt.Errorf("%w: %w", errInvalidConfig, err)
}
