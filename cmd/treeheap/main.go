package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/xvzc/treeheap/internal/config"
	"github.com/xvzc/treeheap/internal/engine"
	"github.com/xvzc/treeheap/internal/logging"
	"github.com/xvzc/treeheap/internal/ptr"
	"github.com/xvzc/treeheap/internal/render"
	"github.com/xvzc/treeheap/internal/shell"
)

// Version information set by ldflags
var (
	version = "dev"
	commit  = "unknown"
	build   = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	)
	defer stop()

	cmd := config.CreateCommand(runApp, version, commit, build)
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "treeheap: %s\n", err)
		stop()
		os.Exit(1)
	}
}

func runApp(ctx context.Context, configDir string, cfg *config.Config) error {
	logger := logging.NewLogger(ptr.FromPtrOr(cfg.General.LogLevel, zerolog.InfoLevel), os.Stderr)
	mainLogger := logging.WithScope(logger, "MAIN")

	if configDir != "" {
		mainLogger.Info().Str("path", configDir).Msg("config file loaded")
	}

	if !ptr.FromPtrOr(cfg.General.Silent, false) {
		if err := printBanner(os.Stdout, cfg); err != nil {
			mainLogger.Warn().Err(err).Msg("failed to print banner")
		}
	}

	eng := engine.New(logging.WithScope(logger, "ENGINE"))
	if err := eng.Seed(ctx, cfg.Seed.Tree, cfg.Seed.Heap); err != nil {
		logging.WarnUnwrapped(&mainLogger, "seeding stopped", err)
		return fmt.Errorf("error seeding: %w", err)
	}

	in, interactive, closeInput, err := openInput(ptr.FromPtrOr(cfg.Shell.Script, ""), os.Stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	sh := createShell(eng, os.Stdout, cfg, interactive, logging.WithScope(logger, "SHELL"))

	mainLogger.Debug().Bool("interactive", interactive).Msg("shell started")
	if err := sh.Run(ctx, in); err != nil {
		logging.ErrorUnwrapped(&mainLogger, "shell stopped", err)
		return err
	}

	return nil
}

func createShell(
	eng shell.Engine,
	out io.Writer,
	cfg *config.Config,
	interactive bool,
	logger zerolog.Logger,
) *shell.Shell {
	return shell.New(eng, out, shell.Options{
		Format:      ptr.FromPtrOr(cfg.Shell.Format, render.FormatList),
		Prompt:      ptr.FromPtrOr(cfg.Shell.Prompt, ""),
		Interactive: interactive,
	}, logger)
}

// openInput returns the script file when one is configured, stdin otherwise.
// Only a terminal on stdin counts as interactive.
func openInput(script string, stdin *os.File) (io.Reader, bool, func(), error) {
	if script != "" {
		f, err := os.Open(script)
		if err != nil {
			return nil, false, nil, fmt.Errorf("error opening script: %w", err)
		}
		return f, false, func() { _ = f.Close() }, nil
	}

	interactive := false
	if fi, err := stdin.Stat(); err == nil {
		interactive = fi.Mode()&os.ModeCharDevice != 0
	}

	return stdin, interactive, func() {}, nil
}

func printBanner(w io.Writer, cfg *config.Config) error {
	items := map[string]string{
		"LOG_LEVEL": ptr.FromPtrOr(cfg.General.LogLevel, zerolog.InfoLevel).String(),
		"FORMAT":    ptr.FromPtrOr(cfg.Shell.Format, render.FormatList).String(),
		"SCRIPT":    orNone(ptr.FromPtrOr(cfg.Shell.Script, "")),
		"TREE_SEED": render.Sequence(render.FormatList, cfg.Seed.Tree),
		"HEAP_SEED": render.Sequence(render.FormatList, cfg.Seed.Heap),
	}

	return render.Banner(w, items, []string{
		"LOG_LEVEL",
		"FORMAT",
		"SCRIPT",
		"TREE_SEED",
		"HEAP_SEED",
	})
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}
