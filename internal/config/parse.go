package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

func isOk[T any](p *T, err error) bool {
	return p != nil && err == nil
}

func parseBoolFn() func(any) (bool, error) {
	return func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil
	}
}

func parseStringFn(check func(string) error) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}

		if check != nil {
			if err := check(s); err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

// parseIntFn accepts the int64 values produced by the TOML decoder and
// rejects anything that does not fit in T.
func parseIntFn[T integer](check func(T) error) func(any) (T, error) {
	return func(v any) (T, error) {
		var i64 int64
		switch n := v.(type) {
		case int64:
			i64 = n
		case int:
			i64 = int64(n)
		default:
			return 0, fmt.Errorf("expected integer, got %T", v)
		}

		t := T(i64)
		if int64(t) != i64 {
			return 0, fmt.Errorf("%d out of range", i64)
		}

		if check != nil {
			if err := check(t); err != nil {
				return 0, err
			}
		}

		return t, nil
	}
}

func MustParseLogLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		panic(err)
	}
	return level
}
