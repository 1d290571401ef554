package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/treeheap/internal/ptr"
	"github.com/xvzc/treeheap/internal/render"
)

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Silent   *bool          `toml:"silent"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type general config")
	}

	o.Silent = findFrom(m, "silent", parseBoolFn(), &err)
	if p := findFrom(m, "log-level", parseStringFn(checkLogLevel), &err); isOk(p, err) {
		o.LogLevel = ptr.FromValue(MustParseLogLevel(*p))
	}

	return err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: ptr.Clone(o.LogLevel),
		Silent:   ptr.Clone(o.Silent),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: ptr.CloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   ptr.CloneOr(overrides.Silent, origin.Silent),
	}
}

// ┌───────────────┐
// │ SHELL OPTIONS │
// └───────────────┘
var _ merger[*ShellOptions] = (*ShellOptions)(nil)

type ShellOptions struct {
	Prompt *string        `toml:"prompt"`
	Script *string        `toml:"script"`
	Format *render.Format `toml:"format"`
}

func (o *ShellOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("'shell' must be table type")
	}

	o.Prompt = findFrom(m, "prompt", parseStringFn(checkPrompt), &err)
	o.Script = findFrom(m, "script", parseStringFn(nil), &err)
	if p := findFrom(m, "format", parseStringFn(checkFormat), &err); isOk(p, err) {
		o.Format = ptr.FromValue(render.MustParseFormat(*p))
	}

	return err
}

func (o *ShellOptions) Clone() *ShellOptions {
	if o == nil {
		return nil
	}

	return &ShellOptions{
		Prompt: ptr.Clone(o.Prompt),
		Script: ptr.Clone(o.Script),
		Format: ptr.Clone(o.Format),
	}
}

func (origin *ShellOptions) Merge(overrides *ShellOptions) *ShellOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &ShellOptions{
		Prompt: ptr.CloneOr(overrides.Prompt, origin.Prompt),
		Script: ptr.CloneOr(overrides.Script, origin.Script),
		Format: ptr.CloneOr(overrides.Format, origin.Format),
	}
}

// ┌──────────────┐
// │ SEED OPTIONS │
// └──────────────┘
var _ merger[*SeedOptions] = (*SeedOptions)(nil)

// SeedOptions lists values loaded before the shell starts. A nil slice
// means "not set"; an empty one explicitly seeds nothing.
type SeedOptions struct {
	Tree []int32 `toml:"tree"`
	Heap []int32 `toml:"heap"`
}

func (o *SeedOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("'seed' must be table type")
	}

	o.Tree = findSliceFrom(m, "tree", parseIntFn[int32](nil), &err)
	o.Heap = findSliceFrom(m, "heap", parseIntFn[int32](nil), &err)

	return err
}

func (o *SeedOptions) Clone() *SeedOptions {
	if o == nil {
		return nil
	}

	return &SeedOptions{
		Tree: ptr.CloneSlice(o.Tree),
		Heap: ptr.CloneSlice(o.Heap),
	}
}

func (origin *SeedOptions) Merge(overrides *SeedOptions) *SeedOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &SeedOptions{
		Tree: ptr.CloneSliceOr(overrides.Tree, origin.Tree),
		Heap: ptr.CloneSliceOr(overrides.Heap, origin.Heap),
	}
}
