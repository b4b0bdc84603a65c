package commands

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cubeshuffle/internal/core/logging"
	"github.com/colonyops/cubeshuffle/internal/core/pack"
	"github.com/colonyops/cubeshuffle/internal/cubeshuffle"
	"github.com/colonyops/cubeshuffle/internal/tui"
	"github.com/colonyops/cubeshuffle/internal/tui/views/packs"
	"github.com/colonyops/cubeshuffle/pkg/iojson"
	"github.com/colonyops/cubeshuffle/pkg/randid"
)

type ReviewCmd struct {
	flags  *Flags
	app    *cubeshuffle.App
	glob   string
	reader iojson.FileReader[[]pack.Pack]
}

// NewReviewCmd creates a new review command.
func NewReviewCmd(flags *Flags, app *cubeshuffle.App) *ReviewCmd {
	return &ReviewCmd{
		flags: flags,
		app:   app,
		reader: iojson.FileReader[[]pack.Pack]{
			Decode: pack.Decode,
			Usage:  "path to a JSON or YAML packs file (reads from stdin if not provided)",
		},
	}
}

// Flags returns the review flags so they can also be registered on the root
// command, where review is the default action.
func (cmd *ReviewCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "packs",
			Aliases:     []string{"p"},
			Usage:       "glob of pack files to review, e.g. 'out/**/*.yaml'",
			Destination: &cmd.glob,
		},
		cmd.reader.Flag(),
	}
}

// Register adds the review command to the application.
func (cmd *ReviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "review",
		Usage: "Review computed packs",
		Description: `Review opens the pack review screen.

Each pack is shown as a card listing its piles. Mark a pack done with enter
or space; finished packs sink to the end of the grid and keep their number.
When started from the desktop shell the mouse wheel zooms the cards.

Examples:
  cubeshuffle review --packs 'out/**/*.yaml'
  cubeshuffle review -f packs.json
  shuffle-tool | cubeshuffle review`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})

	return app
}

// Run loads the packs and runs the review TUI until the user quits.
func (cmd *ReviewCmd) Run(ctx context.Context, c *cli.Command) error {
	list, err := cmd.loadPacks()
	if errors.Is(err, pack.ErrNoPacks) {
		_, _ = fmt.Fprintln(c.Root().Writer, "No packs to review.")
		return nil
	}
	if err != nil {
		return err
	}

	ctx = logging.WithReviewID(ctx, randid.Generate(8))
	logger := logging.Component("review")
	logger.Info().Ctx(ctx).Int("packs", len(list)).Msg("starting review")

	session := packs.NewSession(list, cmd.app.DetectDesktop())
	m := tui.NewReview(tui.ReviewOptions{
		Session:   session,
		Config:    cmd.app.Settings.Load(ctx),
		CardWidth: cmd.app.Config.TUI.CardWidth,
		Logger:    logger.With().Str("review_id", logging.GetReviewID(ctx)).Logger(),
	})

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run review TUI: %w", err)
	}

	checked, total := session.Counts()
	log.Debug().Ctx(ctx).Int("checked", checked).Int("total", total).Msg("review finished")
	return nil
}

func (cmd *ReviewCmd) loadPacks() ([]pack.Pack, error) {
	if cmd.glob != "" {
		if cmd.reader.Path() != "" {
			return nil, fmt.Errorf("--packs and --file cannot be used together")
		}
		list, files, err := pack.LoadGlob(cmd.glob)
		if err != nil {
			return nil, err
		}
		log.Debug().Strs("files", files).Msg("loaded pack files")
		return list, nil
	}

	return cmd.reader.Read()
}
