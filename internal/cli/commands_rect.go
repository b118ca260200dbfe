package cli

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"osmbox/internal/geom"
	"osmbox/internal/output"
)

type probeReport struct {
	Point  geom.Coordinate `json:"point" yaml:"point"`
	Inside bool            `json:"inside" yaml:"inside"`
}

type rectReport struct {
	Rect   geom.Rect     `json:"rect" yaml:"rect"`
	MapURL string        `json:"map_url" yaml:"map_url"`
	Probes []probeReport `json:"probes" yaml:"probes"`
}

func newRectCommand(deps Dependencies) *cobra.Command {
	corners := &coordinateListValue{presets: deps.presets()}
	probes := &coordinateListValue{presets: deps.presets()}

	cmd := &cobra.Command{
		Use:   "rect",
		Short: "Normalize a bounding box, test points against it and print its map URL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(corners.values) != 2 {
				return usageError("rect: exactly two --corner values are required, got %d", len(corners.values))
			}
			rect := geom.NewRect(corners.values[0], corners.values[1])
			report := rectReport{
				Rect:   rect,
				MapURL: rect.MapURL(),
				Probes: make([]probeReport, 0, len(probes.values)),
			}
			for _, p := range probes.values {
				report.Probes = append(report.Probes, probeReport{Point: p, Inside: rect.Contains(p)})
			}
			slog.Debug("rect built", "rect", rect, "probes", len(report.Probes))

			return emit(cmd, deps, report, func() string {
				text := output.RenderTable(
					[]string{"field", "value"},
					[][]string{
						{"min", rect.Min().String()},
						{"max", rect.Max().String()},
						{"map_url", report.MapURL},
					},
				)
				if len(report.Probes) == 0 {
					return text
				}
				rows := make([][]string, 0, len(report.Probes))
				for _, p := range report.Probes {
					rows = append(rows, []string{p.Point.String(), strconv.FormatBool(p.Inside)})
				}
				return text + "\n\n" + output.RenderTable([]string{"point", "inside"}, rows)
			})
		},
	}
	cmd.Flags().Var(corners, "corner", "Rect corner as lat,lon or @preset; give exactly two.")
	cmd.Flags().Var(probes, "contains", "Point to test for strict containment; repeatable.")
	return cmd
}
