package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/treeheap/internal/ptr"
	"github.com/xvzc/treeheap/internal/render"
)

type merger[T any] interface {
	cloner[T]
	Merge(overrides T) T
}

type cloner[T any] interface {
	Clone() T
}

var _ merger[*Config] = (*Config)(nil)

type Config struct {
	General *GeneralOptions `toml:"general"`
	Shell   *ShellOptions   `toml:"shell"`
	Seed    *SeedOptions    `toml:"seed"`
}

// NewConfig returns a config with every section allocated but no option set.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{},
		Shell:   &ShellOptions{},
		Seed:    &SeedOptions{},
	}
}

func getDefault() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: ptr.FromValue(zerolog.InfoLevel),
			Silent:   ptr.FromValue(false),
		},
		Shell: &ShellOptions{
			Prompt: ptr.FromValue("> "),
			Script: ptr.FromValue(""),
			Format: ptr.FromValue(render.FormatList),
		},
		Seed: &SeedOptions{
			Tree: []int32{},
			Heap: []int32{},
		},
	}
}

func (c *Config) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type config")
	}

	c.General = findStructFrom[GeneralOptions](m, "general", &err)
	c.Shell = findStructFrom[ShellOptions](m, "shell", &err)
	c.Seed = findStructFrom[SeedOptions](m, "seed", &err)

	return err
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General: c.General.Clone(),
		Shell:   c.Shell.Clone(),
		Seed:    c.Seed.Clone(),
	}
}

// Merge returns a new config where every option set in overrides replaces
// the one in origin. Neither input is modified.
func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General: origin.General.Merge(overrides.General),
		Shell:   origin.Shell.Merge(overrides.Shell),
		Seed:    origin.Seed.Merge(overrides.Seed),
	}
}
