package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchStore blocks until something changes in the record directory, then
// emits storeChangedMsg. The model re-issues the command after each event,
// so the directory stays watched for the life of the program.
func watchStore(dir string, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Warn("store watcher unavailable", zap.Error(err))
			return nil
		}
		defer watcher.Close()

		if err := watcher.Add(dir); err != nil {
			logger.Warn("failed to watch store directory",
				zap.String("dir", dir),
				zap.Error(err),
			)
			return nil
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
					event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
					return storeChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("store watcher error", zap.Error(err))
			}
		}
	}
}
