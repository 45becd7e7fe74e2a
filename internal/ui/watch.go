package ui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// startWatchCmd watches the directory holding path. Saves are atomic renames,
// so watching the file itself would lose track of it after the first write.
func startWatchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return watcherStartedMsg{err: err}
		}

		w, err := fsnotify.NewWatcher()
		if err != nil {
			return watcherStartedMsg{err: err}
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return watcherStartedMsg{err: err}
		}
		return watcherStartedMsg{watcher: w}
	}
}

// waitForChangeCmd blocks until path is written, created, renamed, or removed.
// It yields nil once the watcher is closed.
func waitForChangeCmd(w *fsnotify.Watcher, path string) tea.Cmd {
	if w == nil {
		return nil
	}
	target := filepath.Clean(path)
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					return fileChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
