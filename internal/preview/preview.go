// Package preview is the interactive terminal view of the dataset. Beyond
// browsing the derived numbers, it hosts the same header-height machinery
// the generated site runs in browsers: a live header element, a style root,
// and a synchronizer bound to the session's trigger points, with the
// published variable visible in the status bar.
package preview

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/provislabs/provis/internal/dataset"
)

// Run starts the preview session and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, table *dataset.Table, siteName string) error {
	m, err := NewModel(table, siteName)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
