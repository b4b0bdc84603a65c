package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cubeshuffle/internal/commands"
	"github.com/colonyops/cubeshuffle/internal/core/config"
	"github.com/colonyops/cubeshuffle/internal/core/logging"
	"github.com/colonyops/cubeshuffle/internal/core/styles"
	"github.com/colonyops/cubeshuffle/internal/cubeshuffle"
	"github.com/colonyops/cubeshuffle/internal/printer"
	"github.com/colonyops/cubeshuffle/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser   func()
		storeCloser func()
		app         = &cubeshuffle.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "cubeshuffle",
		Usage:     "Review shuffled card packs",
		UsageText: "cubeshuffle [global options] [command [command options]]",
		Description: `Cubeshuffle shows computed card packs as a grid of cards so they can be
checked off one by one while the packs are assembled.

Run 'cubeshuffle --packs GLOB' or pipe packs on stdin to open the review screen.
Run 'cubeshuffle config show' to inspect saved settings.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CUBESHUFFLE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/cubeshuffle.log)",
				Sources:     cli.EnvVars("CUBESHUFFLE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CUBESHUFFLE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CUBESHUFFLE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "store",
				Usage:       "settings store backend, overrides the config file (sqlite, file, memory, none)",
				Sources:     cli.EnvVars("CUBESHUFFLE_STORE"),
				Destination: &flags.Store,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The review screen owns the terminal, so logs always go to a file.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "cubeshuffle.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Validation ensures the theme name is known.
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			opened, closer := cubeshuffle.Open(cfg, flags.Store, logger)
			storeCloser = closer

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = *opened

			return printer.NewContext(ctx, printer.New(c.Root().Writer)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if storeCloser != nil {
				storeCloser()
			}
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	reviewCmd := commands.NewReviewCmd(flags, app)

	root = reviewCmd.Register(root)
	root = commands.NewConfigCmd(flags, app).Register(root)

	// Review is the default action when no subcommand is provided.
	root.Flags = append(root.Flags, reviewCmd.Flags()...)
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'cubeshuffle --help' for usage", c.Args().First())
		}
		return reviewCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
