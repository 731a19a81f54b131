package cpusched

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/cpusched/service/allocator"
	"github.com/viant/cpusched/service/processor"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the simulator configuration.
// Fields left out of a config file keep their DefaultConfig values.
type Config struct {
	Memory  MemoryConfig  `json:"memory" yaml:"memory"`
	Quantum QuantumConfig `json:"quantum" yaml:"quantum"`
	Input   InputConfig   `json:"input" yaml:"input"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// MemoryConfig partitions the system memory
type MemoryConfig struct {
	Total    int `json:"total" yaml:"total"`
	Reserved int `json:"reserved" yaml:"reserved"`
}

// QuantumConfig defines round robin time slices
type QuantumConfig struct {
	Medium int `json:"medium" yaml:"medium"`
	Low    int `json:"low" yaml:"low"`
}

// InputConfig limits ingestion, MaxRecords 0 disables the cap
type InputConfig struct {
	MaxRecords int `json:"maxRecords" yaml:"maxRecords"`
}

// LogConfig defines logging
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns the reference configuration
func DefaultConfig() *Config {
	return &Config{
		Memory:  MemoryConfig{Total: 2048, Reserved: 512},
		Quantum: QuantumConfig{Medium: 8, Low: 16},
		Input:   InputConfig{MaxRecords: 100},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Memory.Total <= 0 {
		errs = append(errs, fmt.Errorf("memory.total must be > 0"))
	}
	if c.Memory.Reserved < 0 {
		errs = append(errs, fmt.Errorf("memory.reserved must be >= 0"))
	}
	if c.Memory.Reserved > c.Memory.Total {
		errs = append(errs, fmt.Errorf("memory.reserved %d exceeds memory.total %d", c.Memory.Reserved, c.Memory.Total))
	}
	if c.Quantum.Medium <= 0 {
		errs = append(errs, fmt.Errorf("quantum.medium must be > 0"))
	}
	if c.Quantum.Low <= 0 {
		errs = append(errs, fmt.Errorf("quantum.low must be > 0"))
	}
	if c.Input.MaxRecords < 0 {
		errs = append(errs, fmt.Errorf("input.maxRecords must be >= 0"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses the configured level, empty means info
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Allocator returns allocator configuration
func (c *Config) Allocator() allocator.Config {
	return allocator.Config{TotalMemory: c.Memory.Total, ReservedMemory: c.Memory.Reserved}
}

// Processor returns processor configuration
func (c *Config) Processor() processor.Config {
	return processor.Config{MediumQuantum: c.Quantum.Medium, LowQuantum: c.Quantum.Low}
}

// LoadConfig loads a YAML (or JSON) config on top of DefaultConfig.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
