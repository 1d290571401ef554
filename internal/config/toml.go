package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/xvzc/treeheap/internal/ptr"
)

func fromTomlFile(dir string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(dir, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// searchTomlFile returns customDir if it is set and exists, otherwise the
// first existing path in lookupDirs. Finding nothing is not an error.
func searchTomlFile(customDir string, lookupDirs []string) (string, error) {
	if customDir != "" {
		if _, err := os.Stat(customDir); err != nil {
			return "", fmt.Errorf("no such file: %s", customDir)
		}
		return customDir, nil
	}

	for _, p := range lookupDirs {
		if p == "" {
			continue
		}

		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}

// findFrom looks up key in data and parses it. It does nothing once *err is
// set, which lets callers chain lookups and check the error once.
func findFrom[T any](
	data map[string]any,
	key string,
	parser func(any) (T, error),
	err *error,
) *T {
	if err != nil && *err != nil {
		return nil
	}

	anyVal, ok := data[key]
	if !ok {
		return nil
	}

	val, parseErr := parser(anyVal)
	if parseErr != nil {
		*err = fmt.Errorf("field %q: %w", key, parseErr)
		return nil
	}

	return ptr.FromValue(val)
}

func findStructFrom[T any, PT interface {
	*T
	toml.Unmarshaler
}](m map[string]any, key string, errPtr *error) *T {
	if errPtr != nil && *errPtr != nil {
		return nil
	}

	val, ok := m[key]
	if !ok {
		return nil
	}

	var item T
	if err := PT(&item).UnmarshalTOML(val); err != nil {
		*errPtr = fmt.Errorf("failed to decode '%s': %w", key, err)
		return nil
	}

	return &item
}

func findSliceFrom[T any](
	data map[string]any,
	key string,
	elementParser func(any) (T, error),
	err *error,
) []T {
	if err != nil && *err != nil {
		return nil
	}

	val, ok := data[key]
	if !ok {
		return nil
	}

	rawList, ok := val.([]any)
	if !ok {
		if typedList, ok := val.([]T); ok {
			return ptr.CloneSlice(typedList)
		}
		*err = fmt.Errorf("field %q: expected list, got %T", key, val)
		return nil
	}

	result := make([]T, 0, len(rawList))
	for i, rawItem := range rawList {
		parsedItem, parseErr := elementParser(rawItem)
		if parseErr != nil {
			*err = fmt.Errorf("field %q[%d]: %w", key, i, parseErr)
			return nil
		}
		result = append(result, parsedItem)
	}

	return result
}
