package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/prj/internal/store"
	"github.com/fyrsmithlabs/prj/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive project manager",
	Long: `Open the interactive terminal interface. With the file backend the
record directory is watched, so records added or removed by another process
show up without a manual refresh.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	_, logger, st, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	watchDir := ""
	if fs, ok := st.(*store.FileStore); ok {
		watchDir = fs.Dir()
	}

	p := tea.NewProgram(tui.New(st, logger, watchDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive interface: %w", err)
	}
	return nil
}
