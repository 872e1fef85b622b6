package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
)

const exportFileMode = 0o644

var writeClipboard = clipboard.WriteAll

func (m model) cmdLoad() tea.Cmd {
	ctx, svc, path, cred := m.ctx, m.containers, m.path, m.cred
	return func() tea.Msg {
		c, err := svc.Open(ctx, path, cred)
		return loadedMsg{container: c, err: err}
	}
}

func (m model) cmdSave() tea.Cmd {
	ctx, svc, path, cred, c := m.ctx, m.containers, m.path, m.cred, m.container
	return func() tea.Msg {
		return savedMsg{err: svc.Save(ctx, path, c, cred)}
	}
}

func (m model) cmdReadFile(path string) tea.Cmd {
	fs := m.fs
	return func() tea.Msg {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			err = fmt.Errorf("read %s: %w", path, err)
		}
		return fileReadMsg{path: path, data: data, err: err}
	}
}

func (m model) cmdWriteFile(path string, data []byte) tea.Cmd {
	fs := m.fs
	return func() tea.Msg {
		if err := afero.WriteFile(fs, path, data, exportFileMode); err != nil {
			return exportedMsg{path: path, err: fmt.Errorf("write %s: %w", path, err)}
		}
		return exportedMsg{path: path}
	}
}

func cmdCopyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
