package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/panelgrid/panelgrid/pkg/element"
	"github.com/panelgrid/panelgrid/pkg/grid"
	"github.com/panelgrid/panelgrid/pkg/panel"
	"github.com/panelgrid/panelgrid/pkg/scene"
	"github.com/panelgrid/panelgrid/pkg/scene/memory"
	"github.com/panelgrid/panelgrid/pkg/scene/termview"
)

// Scoreboard cell geometry, tuned for a readable terminal projection.
var scoreboardCell = scene.Size{Width: 0.4, Height: 0.18, Depth: 0.01}

// newScoreboardCmd creates the scoreboard command: the interactive demo that
// composes a grid of player buttons and score labels.
func newScoreboardCmd() *cobra.Command {
	var (
		players []string
		static  bool
	)

	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Run the interactive scoreboard demo",
		Long: `Build a scoreboard panel (title, one button per player, one score label
per player) on an in-memory scene backend and preview it in the terminal.
Clicking a player's button increments their score.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			backend := memory.New()

			p := newProgress(logger)
			if _, err := buildScoreboard(panel.New(backend), players); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Built scoreboard for %d players", len(players)))

			if static {
				fmt.Fprintln(cmd.OutOrStdout(), termview.Render(backend))
				return nil
			}

			_, err := termview.NewProgram(backend, "panelgrid scoreboard").Run()
			return err
		},
	}

	cmd.Flags().StringSliceVar(&players, "players", []string{"Red", "Blue", "Green"}, "player names")
	cmd.Flags().BoolVar(&static, "static", false, "print a single frame instead of running interactively")

	return cmd
}

// scoreboard wires the demo's click handlers to its score labels.
type scoreboard struct {
	Grid   *grid.Grid
	Scores map[string]*element.Label
	counts map[string]int
}

// buildScoreboard composes the scoreboard scene: a title spanning every
// column, a row of player buttons, and a row of score labels. Clicking a
// button increments that player's score label in place.
func buildScoreboard(kit *panel.Kit, players []string) (*scoreboard, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("at least one player required")
	}

	console, err := kit.NewGrid("scoreboard", grid.Config{
		Columns:  len(players),
		CellSize: scoreboardCell,
		GutterX:  0.02,
		GutterY:  0.02,
	}, panel.TransformAt(scene.Vec3{Y: 1.2, Z: -2}, scene.Vec3{Y: 180}))
	if err != nil {
		return nil, err
	}

	board := &scoreboard{
		Grid:   console,
		Scores: make(map[string]*element.Label, len(players)),
		counts: make(map[string]int, len(players)),
	}

	title := kit.NewLabel("title", element.LabelSpec{
		Text: "SCOREBOARD",
		Footprint: scene.Size{
			Width:  scoreboardCell.Width*float64(len(players)) + 0.02*float64(len(players)-1),
			Height: scoreboardCell.Height,
		},
	})
	console.Add(title, grid.WithSpan(len(players)))

	for _, name := range players {
		name := name
		console.Add(kit.NewButton("button/"+name, element.ButtonSpec{
			Size: scoreboardCell,
			Text: name,
			OnClick: func() {
				board.counts[name]++
				board.Scores[name].SetText(strconv.Itoa(board.counts[name]))
			},
		}))
	}

	for _, name := range players {
		score := kit.NewLabel("score/"+name, element.LabelSpec{
			Text:      "0",
			Footprint: scene.Size{Width: scoreboardCell.Width, Height: scoreboardCell.Height},
		})
		board.Scores[name] = score
		console.Add(score)
	}

	return board, nil
}
