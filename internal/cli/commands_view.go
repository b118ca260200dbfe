package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"osmbox/internal/tui"
)

func newViewCommand(deps Dependencies) *cobra.Command {
	corners := &coordinateListValue{presets: deps.presets()}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive rect viewer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n := len(corners.values); n != 0 && n != 2 {
				return usageError("view: give zero or two --corner values, got %d", n)
			}
			if deps.RunViewer == nil {
				return errors.New("view: viewer is not available")
			}
			opts := tui.Options{Corners: corners.values, Presets: deps.presets()}
			if deps.Config != nil {
				opts.LogFile = deps.Config.Log.File
			}
			return deps.RunViewer(cmd.Context(), opts)
		},
	}
	cmd.Flags().Var(corners, "corner", "Initial rect corner as lat,lon or @preset; give zero or two.")
	return cmd
}
