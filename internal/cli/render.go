package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelgrid/panelgrid/pkg/panel"
	"github.com/panelgrid/panelgrid/pkg/scene/memory"
	"github.com/panelgrid/panelgrid/pkg/scene/termview"
)

// newRenderCmd creates the render command: build a manifest's scene on an
// in-memory backend and print the terminal projection.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <manifest.toml>",
		Short: "Preview a panel manifest in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := panel.LoadManifest(args[0])
			if err != nil {
				return err
			}
			logger.Debug("manifest loaded", "elements", len(m.Elements), "columns", m.Grid.Columns)

			backend := memory.New()
			result, err := panel.New(backend).Build(m)
			if err != nil {
				return err
			}
			logger.Debug("scene built", "slots", result.Grid.SlotCount())

			fmt.Fprintln(cmd.OutOrStdout(), termview.Render(backend))
			return nil
		},
	}
	return cmd
}
