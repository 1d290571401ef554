package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvzc/treeheap/internal/config"
	"github.com/xvzc/treeheap/internal/engine"
	"github.com/xvzc/treeheap/internal/ptr"
	"github.com/xvzc/treeheap/internal/render"
)

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.General = &config.GeneralOptions{
		LogLevel: ptr.FromValue(zerolog.InfoLevel),
		Silent:   ptr.FromValue(true),
	}
	cfg.Shell = &config.ShellOptions{
		Prompt: ptr.FromValue("> "),
		Script: ptr.FromValue(""),
		Format: ptr.FromValue(render.FormatPlain),
	}
	cfg.Seed = &config.SeedOptions{
		Tree: []int32{5, 3},
		Heap: []int32{9},
	}

	return cfg
}

func TestCreateShell(t *testing.T) {
	cfg := testConfig()

	eng := engine.New(zerolog.Nop())
	require.NoError(t, eng.Seed(context.Background(), cfg.Seed.Tree, cfg.Seed.Heap))

	var out bytes.Buffer
	sh := createShell(eng, &out, cfg, false, zerolog.Nop())

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("heap 1\nshow\n")))

	assert.Contains(t, out.String(), "Added 1 to Min-Heap\n")
	assert.Contains(t, out.String(), "Binary Tree (In-Order Traversal): 3 5\n")
	assert.Contains(t, out.String(), "Min-Heap (Sorted Order): 1 9\n")
}

func TestCreateShell_UnsetOptions(t *testing.T) {
	cfg := config.NewConfig()

	var out bytes.Buffer
	sh := createShell(engine.New(zerolog.Nop()), &out, cfg, true, zerolog.Nop())

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("tree 2\nshow in-order\n")))

	// No prompt is configured, and the format falls back to list.
	assert.Equal(t, "Added 2 to Binary Tree\n\nBinary Tree (In-Order Traversal): [2]\n", out.String())
}

func TestRunApp_SeedCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.General.LogLevel = ptr.FromValue(zerolog.Disabled)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runApp(ctx, "", cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenInput(t *testing.T) {
	t.Run("script file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cmds.txt")
		require.NoError(t, os.WriteFile(path, []byte("tree 1\n"), 0o644))

		in, interactive, closeInput, err := openInput(path, os.Stdin)
		require.NoError(t, err)
		defer closeInput()

		assert.False(t, interactive)
		assert.NotNil(t, in)
	})

	t.Run("missing script", func(t *testing.T) {
		_, _, _, err := openInput(filepath.Join(t.TempDir(), "nope"), os.Stdin)
		assert.Error(t, err)
	})

	t.Run("stdin from a regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stdin")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		in, interactive, closeInput, err := openInput("", f)
		require.NoError(t, err)
		defer closeInput()

		assert.False(t, interactive)
		assert.Equal(t, f, in)
	})
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printBanner(&out, testConfig()))

	s := out.String()
	assert.Contains(t, s, "FORMAT")
	assert.Contains(t, s, "plain")
	assert.Contains(t, s, "none")
	assert.Contains(t, s, "[5, 3]")
}
