package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xvzc/treeheap/internal/render"
	"github.com/xvzc/treeheap/internal/value"
)

func checkLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, strings.ToLower(v)) {
		return fmt.Errorf("invalid log level %q, expected one of %v", v, availableLogLevels)
	}
	return nil
}

func checkFormat(v string) error {
	_, err := render.ParseFormat(v)
	return err
}

func checkValues(ss []string) error {
	_, err := value.ParseAll(ss)
	return err
}

func checkPrompt(v string) error {
	if strings.ContainsAny(v, "\n\r") {
		return fmt.Errorf("prompt must be a single line")
	}
	return nil
}
