package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/cubeshuffle/internal/core/pack"
	"github.com/colonyops/cubeshuffle/internal/core/settings"
	"github.com/colonyops/cubeshuffle/internal/core/styles"
	"github.com/colonyops/cubeshuffle/internal/core/validate"
	"github.com/colonyops/cubeshuffle/internal/cubeshuffle"
	"github.com/colonyops/cubeshuffle/internal/printer"
	"github.com/colonyops/cubeshuffle/pkg/iojson"
)

type ConfigCmd struct {
	flags *Flags
	app   *cubeshuffle.App

	// show
	json bool

	// set
	seed        string
	packSize    int
	piles       []string
	removePiles []string

	// reset
	yes bool

	// validate
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, app *cubeshuffle.App) *ConfigCmd {
	return &ConfigCmd{flags: flags, app: app}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect and edit saved settings",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the saved pile table, seed and pack size",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "print as JSON",
						Destination: &cmd.json,
					},
				},
				Action: cmd.runShow,
			},
			{
				Name:      "set",
				Usage:     "Change saved settings",
				UsageText: "cubeshuffle config set [--seed S] [--pack-size N] [--pile name=cards[:color]]...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "seed",
						Usage:       "shuffle seed",
						Destination: &cmd.seed,
					},
					&cli.IntFlag{
						Name:        "pack-size",
						Usage:       "cards per pack",
						Destination: &cmd.packSize,
					},
					&cli.StringSliceFlag{
						Name:        "pile",
						Usage:       "add or replace a pile, as name=cards or name=cards:color",
						Destination: &cmd.piles,
					},
					&cli.StringSliceFlag{
						Name:        "remove-pile",
						Usage:       "remove a pile by name",
						Destination: &cmd.removePiles,
					},
				},
				Action: cmd.runSet,
			},
			{
				Name:  "reset",
				Usage: "Clear saved settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip the confirmation prompt",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runReset,
			},
			{
				Name:        "validate",
				Usage:       "Validate the configuration file",
				Description: "Validates the configuration file and data directory.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	cfg := cmd.app.Settings.Load(ctx)
	w := c.Root().Writer

	if cmd.json {
		return iojson.WriteWith(w, c.Root().ErrWriter, cfg)
	}

	md := settingsMarkdown(cfg)
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		_, err = io.WriteString(w, md)
		return err
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render settings: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func settingsMarkdown(cfg settings.Config) string {
	var b strings.Builder

	seed := cfg.Seed
	if seed == "" {
		seed = "_none_"
	}

	b.WriteString("# Settings\n\n")
	fmt.Fprintf(&b, "- **Seed:** %s\n", seed)
	fmt.Fprintf(&b, "- **Pack size:** %d\n\n", cfg.PackSize)

	if len(cfg.Piles) == 0 {
		b.WriteString("No piles configured.\n")
		return b.String()
	}

	b.WriteString("| Pile | Cards | Color |\n|---|---:|---|\n")
	names := make([]string, 0, len(cfg.Piles))
	for name := range cfg.Piles {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		p := cfg.Piles[name]
		fmt.Fprintf(&b, "| %s | %d | %s |\n", name, p.Cards, p.Color)
	}
	return b.String()
}

func (cmd *ConfigCmd) runSet(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if !cmd.app.Settings.Available() {
		return fmt.Errorf("settings storage is not available (store backend %q)", cmd.app.Config.Store.Backend)
	}

	cfg := cmd.app.Settings.Load(ctx).Clone()

	if c.IsSet("seed") {
		cfg.Seed = cmd.seed
	}
	if c.IsSet("pack-size") {
		cfg.PackSize = cmd.packSize
	}
	for _, name := range cmd.removePiles {
		delete(cfg.Piles, name)
	}
	for _, raw := range cmd.piles {
		name, pile, err := parsePile(raw)
		if err != nil {
			return err
		}
		cfg.Piles[name] = pile
	}

	if err := cfg.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				p.Errorf("%s: %v", fe.Field, fe.Err)
			}
		}
		return cli.Exit("", 1)
	}

	cmd.app.Settings.Save(ctx, cfg)
	p.Successf("Settings saved (%d piles, pack size %d)", len(cfg.Piles), cfg.PackSize)
	return nil
}

// parsePile parses name=cards or name=cards:color.
func parsePile(raw string) (string, pack.Pile, error) {
	name, rest, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || validate.PileName(name) != nil {
		return "", pack.Pile{}, fmt.Errorf("invalid pile %q: want name=cards[:color]", raw)
	}

	cardsStr, color, _ := strings.Cut(rest, ":")
	cards, err := strconv.ParseUint(strings.TrimSpace(cardsStr), 10, 0)
	if err != nil {
		return "", pack.Pile{}, fmt.Errorf("invalid pile %q: cards must be a non-negative integer", raw)
	}

	return name, pack.Pile{Cards: uint(cards), Color: strings.TrimSpace(color)}, nil
}

func (cmd *ConfigCmd) runReset(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if !cmd.yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Reset saved settings?").
			Description("The pile table, seed and pack size return to their defaults.").
			Value(&confirmed).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !confirmed {
			p.Infof("Reset cancelled")
			return nil
		}
	}

	cmd.app.Settings.Reset(ctx)
	p.Successf("Settings reset")
	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, settings.Default())
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	err := cmd.app.Config.ValidateDeep(cmd.flags.ConfigPath)

	var fieldErrs criterio.FieldErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		return err
	}

	if cmd.format == "json" {
		type fieldError struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		}
		out := struct {
			Valid  bool         `json:"valid"`
			Errors []fieldError `json:"errors,omitempty"`
		}{Valid: err == nil}
		for _, fe := range fieldErrs {
			out.Errors = append(out.Errors, fieldError{Field: fe.Field, Message: fe.Err.Error()})
		}
		if werr := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); werr != nil {
			return werr
		}
		if err != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)
	if err == nil {
		p.Successf("Configuration is valid")
		return nil
	}
	for _, fe := range fieldErrs {
		p.Errorf("%s: %v", fe.Field, fe.Err)
	}
	p.Printf("")
	p.Errorf("%d error(s) found", len(fieldErrs))
	return cli.Exit("", 1)
}
