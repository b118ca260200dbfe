package cli

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"osmbox/internal/geom"
	"osmbox/internal/output"
)

type distanceReport struct {
	From       geom.Coordinate `json:"from" yaml:"from"`
	To         geom.Coordinate `json:"to" yaml:"to"`
	Meters     float64         `json:"meters" yaml:"meters"`
	Kilometers float64         `json:"kilometers" yaml:"kilometers"`
}

func newDistanceCommand(deps Dependencies) *cobra.Command {
	from := &coordinateValue{presets: deps.presets()}
	to := &coordinateValue{presets: deps.presets()}

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Great-circle distance between two coordinates.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !from.set || !to.set {
				return usageError("distance: --from and --to are required")
			}
			meters := from.value.Distance(to.value)
			slog.Debug("distance computed", "from", from.value, "to", to.value, "meters", meters)

			report := distanceReport{
				From:       from.value,
				To:         to.value,
				Meters:     meters,
				Kilometers: meters / 1000,
			}
			return emit(cmd, deps, report, func() string {
				return output.RenderTable(
					[]string{"from", "to", "meters", "km"},
					[][]string{{
						report.From.String(),
						report.To.String(),
						strconv.FormatFloat(report.Meters, 'f', 1, 64),
						strconv.FormatFloat(report.Kilometers, 'f', 3, 64),
					}},
				)
			})
		},
	}
	cmd.Flags().Var(from, "from", "Start coordinate as lat,lon or @preset.")
	cmd.Flags().Var(to, "to", "End coordinate as lat,lon or @preset.")
	return cmd
}
