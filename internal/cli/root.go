package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"osmbox/internal/output"
)

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	defaultFormat := string(output.FormatTable)
	if deps.Config != nil && deps.Config.Output.Format != "" {
		defaultFormat = deps.Config.Output.Format
	}

	root := &cobra.Command{
		Use:           "osmbox",
		Short:         "Measure distances and bounding boxes, and build OpenStreetMap map queries.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().String("format", defaultFormat, "Output format: table, json or yaml.")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: 2, err: err}
	})

	root.AddCommand(newDistanceCommand(deps))
	root.AddCommand(newRectCommand(deps))
	root.AddCommand(newViewCommand(deps))
	root.AddCommand(newVersionCommand(deps))

	return root
}

func outputFormat(cmd *cobra.Command) (output.Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(raw)
	if err != nil {
		return "", &exitError{code: 2, err: err}
	}
	return format, nil
}

// emit writes data as an envelope for json/yaml, or calls table otherwise.
func emit(cmd *cobra.Command, deps Dependencies, data any, table func() string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		return output.Write(cmd.OutOrStdout(), table())
	}
	text, err := output.Render(output.BuildEnvelope(cmd.Name(), data, deps.now()), format)
	var unsupported *json.UnsupportedValueError
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%s: %w (json has no NaN or Inf; use --format yaml or table)", cmd.Name(), err)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return output.Write(cmd.OutOrStdout(), text)
}

func newVersionCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the osmbox version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version := deps.Version
			if version == "" {
				version = "dev"
			}
			return output.Write(cmd.OutOrStdout(), version)
		},
	}
}
