package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat  = "text"
	DefaultDataDir = ".physutil"
	DefaultCycles  = 2.0

	DefaultLogLevel = "warn"

	// EnvDataDir overrides the history directory.
	EnvDataDir = "PHYSUTIL_DATA"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "PHYSUTIL_LOG"
)

var Formats = []string{"text", "json", "yaml"}

var (
	ErrUnknownFormat = errors.New("config: unknown output format")

	// ErrJobFormat reports a format set on a single batch job.
	ErrJobFormat = errors.New("config: format is only allowed in batch defaults")
)

type Config struct {
	Calculation string             `yaml:"calculation"`
	Inputs      map[string]float64 `yaml:"inputs"`
	Strict      bool               `yaml:"strict"`
	Format      string             `yaml:"format"`
}

// BatchFile is a list of calculations sharing defaults.
type BatchFile struct {
	Defaults Config   `yaml:"defaults"`
	Jobs     []Config `yaml:"jobs"`
}

func DefaultConfig() *Config {
	return &Config{
		Inputs: map[string]float64{},
		Format: DefaultFormat,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadBatch reads a batch file. Jobs inherit the calculation and strict
// flag from the defaults block. Output format is set once in defaults.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, err
	}
	if bf.Defaults.Format == "" {
		bf.Defaults.Format = DefaultFormat
	}
	if err := bf.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("%s: defaults: %w", path, err)
	}
	for i := range bf.Jobs {
		job := &bf.Jobs[i]
		if job.Calculation == "" {
			job.Calculation = bf.Defaults.Calculation
		}
		if job.Format != "" {
			return nil, fmt.Errorf("%s: job %d: %w", path, i, ErrJobFormat)
		}
		job.Strict = job.Strict || bf.Defaults.Strict
	}
	return &bf, nil
}

// Save writes cfg as YAML that Load reads back.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Format == "" {
		return nil
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Inputs = make(map[string]float64, len(c.Inputs))
	for k, v := range c.Inputs {
		cp.Inputs[k] = v
	}
	return &cp
}

// LoadEnv loads a .env file if one exists at path.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// DataDir returns the history directory from the environment, falling
// back to DefaultDataDir.
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return DefaultDataDir
}

// LogLevel returns the log level from the environment, falling back to
// DefaultLogLevel.
func LogLevel() string {
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return DefaultLogLevel
}
