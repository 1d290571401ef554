package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/xvzc/treeheap/internal/ptr"
	"github.com/xvzc/treeheap/internal/render"
	"github.com/xvzc/treeheap/internal/value"
)

const configFilename = "treeheap.toml"

func CreateCommand(
	runFunc func(ctx context.Context, configDir string, cfg *Config) error,
	version string,
	commit string,
	build string,
) *cli.Command {
	cmd := &cli.Command{
		Name:        "treeheap",
		Usage:       "interactive binary search tree and min-heap shell",
		Description: "Insert integers into a binary search tree and a min-heap and print their orders",
		Version:     fmt.Sprintf("%s %s (%s)", version, commit, build),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "clean",
				Usage: `
				if set, all configuration files will be ignored`,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `
				Custom location of the config file to load. Options given through the command
				line flags will override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("TREEHEAP_CONFIG"),
			},

			&cli.StringFlag{
				Name: "format",
				Usage: `
				How sequences are printed: 'list', 'plain' or 'table'`,
				Value:     "list",
				OnlyOnce:  true,
				Validator: checkFormat,
			},

			&cli.StringSliceFlag{
				Name: "heap-seed",
				Usage: `
				Values inserted into the min-heap before the shell starts.
				This flag can be given multiple times or as a comma separated list.`,
				Validator: checkValues,
			},

			&cli.StringFlag{
				Name: "log-level",
				Usage: `
				Set log level`,
				Value:     "info",
				OnlyOnce:  true,
				Validator: checkLogLevel,
			},

			&cli.StringFlag{
				Name: "prompt",
				Usage: `
				Prompt printed before each command when reading from a terminal`,
				Value:     "> ",
				OnlyOnce:  true,
				Validator: checkPrompt,
			},

			&cli.StringFlag{
				Name: "script",
				Usage: `
				Read commands from this file instead of the standard input`,
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name: "silent",
				Usage: `
				Do not show the banner at start up`,
				OnlyOnce: true,
			},

			&cli.StringSliceFlag{
				Name: "tree-seed",
				Usage: `
				Values inserted into the binary search tree before the shell starts.
				This flag can be given multiple times or as a comma separated list.`,
				Validator: checkValues,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var tomlCfg *Config
			var configDir string
			if !cmd.Bool("clean") {
				lookupDirs := []string{
					path.Join(string(os.PathSeparator), "etc", configFilename),
				}
				if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
					lookupDirs = append(lookupDirs, path.Join(xdg, "treeheap", configFilename))
				}
				if home := os.Getenv("HOME"); home != "" {
					lookupDirs = append(lookupDirs, path.Join(home, ".config", "treeheap", configFilename))
				}

				c, err := searchTomlFile(cmd.String("config"), lookupDirs)
				if err != nil {
					return err
				}

				if c != "" {
					configDir = c
					tomlCfg, err = fromTomlFile(c)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
				}
			}

			argsCfg, err := parseConfigFromArgs(cmd)
			if err != nil {
				return fmt.Errorf("error parsing config from args: %w", err)
			}

			// defaults < config file < flags given on the command line
			finalCfg := getDefault().Merge(tomlCfg).Merge(argsCfg)

			if home := os.Getenv("HOME"); home != "" {
				configDir = strings.Replace(configDir, home, "~", 1)
			}

			return runFunc(ctx, configDir, finalCfg)
		},
	}

	return cmd
}

// parseConfigFromArgs only sets the options that were given explicitly, so
// that flag defaults never hide values from the config file.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	cfg := NewConfig()

	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = ptr.FromValue(MustParseLogLevel(cmd.String("log-level")))
	}

	if cmd.IsSet("silent") {
		cfg.General.Silent = ptr.FromValue(cmd.Bool("silent"))
	}

	if cmd.IsSet("prompt") {
		cfg.Shell.Prompt = ptr.FromValue(cmd.String("prompt"))
	}

	if cmd.IsSet("script") {
		cfg.Shell.Script = ptr.FromValue(cmd.String("script"))
	}

	if cmd.IsSet("format") {
		cfg.Shell.Format = ptr.FromValue(render.MustParseFormat(cmd.String("format")))
	}

	if cmd.IsSet("tree-seed") {
		values, err := value.ParseAll(cmd.StringSlice("tree-seed"))
		if err != nil {
			return nil, fmt.Errorf("tree-seed: %w", err)
		}
		cfg.Seed.Tree = values
	}

	if cmd.IsSet("heap-seed") {
		values, err := value.ParseAll(cmd.StringSlice("heap-seed"))
		if err != nil {
			return nil, fmt.Errorf("heap-seed: %w", err)
		}
		cfg.Seed.Heap = values
	}

	return cfg, nil
}
