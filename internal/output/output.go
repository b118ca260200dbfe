package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format represents command output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnsupportedFormat is returned for unknown --format values.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat validates format values.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, v)
	}
}

// Envelope is the machine-output payload.
type Envelope struct {
	Meta map[string]any `json:"meta" yaml:"meta"`
	Data any            `json:"data" yaml:"data"`
}

// BuildEnvelope wraps data with command metadata.
func BuildEnvelope(command string, data any, now time.Time) Envelope {
	return Envelope{
		Meta: map[string]any{
			"command":      command,
			"generated_at": now.UTC().Truncate(time.Second).Format(time.RFC3339),
		},
		Data: data,
	}
}

// Render renders payload in json/yaml format.
func Render(payload Envelope, format Format) (string, error) {
	switch format {
	case FormatJSON:
		bytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(bytes), nil
	case FormatYAML:
		bytes, err := yaml.Marshal(payload)
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimRight(string(bytes), "\n"), nil
	default:
		return "", fmt.Errorf("render: %w %q (json/yaml only)", ErrUnsupportedFormat, format)
	}
}

// RenderTable renders a plain text table with padded columns.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteByte('\n')
	}
	if len(headers) > 0 {
		writeRow(headers)
	}
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Write writes text followed by a newline.
func Write(w io.Writer, text string) error {
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
