package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"osmbox/internal/logging"
)

// Run starts the viewer and blocks until the user quits or ctx is done.
// Logging goes to opts.LogFile when set and is discarded otherwise, since
// the terminal belongs to the viewer.
func Run(ctx context.Context, opts Options) error {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "osmbox")
		if err != nil {
			return fmt.Errorf("open viewer log %q: %w", opts.LogFile, err)
		}
		defer f.Close()
		logging.Setup(opts.LogLevel, "text", f)
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
