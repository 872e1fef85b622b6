package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/MKhiriev/tinyfs/internal/app"
	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/service"
	"github.com/MKhiriev/tinyfs/internal/tinyfs"
	"github.com/MKhiriev/tinyfs/models"
)

const statusTimeout = 2 * time.Second

type mode int

const (
	modeList mode = iota
	modeConfirmDelete
	modeInput
	modeError
	modeBuildInfo
)

type inputPurpose int

const (
	purposeAdd inputPurpose = iota
	purposeExport
	purposePassword
)

type model struct {
	ctx        context.Context
	containers service.ContainerService
	fs         afero.Fs
	build      models.AppBuildInfo
	logger     *logger.Logger

	path string
	cred crypto.Credential

	container *tinyfs.Container
	entries   []*tinyfs.Entry
	idx       int
	dirty     bool
	busy      bool
	spinner   spinner.Model

	// files read while a save was running; added once it finishes
	pending []fileReadMsg

	mode    mode
	purpose inputPurpose
	input   textinput.Model

	errMsg      string
	status      string
	quitPending bool

	width  int
	height int
}

func newModel(ctx context.Context, containers service.ContainerService, path string, cred crypto.Credential,
	build models.AppBuildInfo, fs afero.Fs, logger *logger.Logger) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:        ctx,
		containers: containers,
		fs:         fs,
		build:      build,
		logger:     logger,
		path:       path,
		cred:       cred,
		busy:       true,
		spinner:    s,
		input:      textinput.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.container = msg.container
		m.refresh()
		return m, nil
	case savedMsg:
		m.busy = false
		var cmd tea.Cmd
		if msg.err != nil {
			m.showError(msg.err)
		} else {
			m.dirty = false
			cmd = m.setStatus("saved")
		}
		return m, tea.Batch(cmd, m.addPending())
	case fileReadMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		if m.busy {
			m.pending = append(m.pending, msg)
			return m, nil
		}
		return m, m.addEntry(filepath.Base(msg.path), msg.data)
	case exportedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		return m, m.setStatus("exported to " + msg.path)
	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		return m, m.setStatus("copied " + msg.what)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeError, modeBuildInfo:
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.mode = modeList
				m.errMsg = ""
			}
			return m, nil
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeInput:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.quit) {
		m.quitPending = false
	}

	switch {
	case key.Matches(msg, keys.quit):
		if m.dirty && !m.quitPending {
			m.quitPending = true
			m.status = "unsaved changes: press q again to discard, s to save"
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.mode = modeBuildInfo
		return m, nil
	}

	if m.container == nil || m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); !ok {
			return m, nil
		}
		if m.container.Len() == 1 {
			m.showError(models.ErrLastEntry)
			return m, nil
		}
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.compress):
		e, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := e.SetCompressed(!e.IsCompressed()); err != nil {
			m.showError(err)
			return m, nil
		}
		m.dirty = true
	case key.Matches(msg, keys.caseFold):
		if err := m.container.SetCaseInsensitive(!m.container.IsCaseInsensitive()); err != nil {
			m.showError(err)
			return m, nil
		}
		m.dirty = true
		m.refresh()
	case key.Matches(msg, keys.utf8):
		m.container.SetUTF8Names(!m.container.UsesUTF8Names())
		m.dirty = true
	case key.Matches(msg, keys.encrypt):
		m.container.SetEncrypted(!m.container.IsEncrypted())
		m.dirty = true
	case key.Matches(msg, keys.copy):
		if e, ok := m.current(); ok {
			return m, cmdCopyToClipboard("preview", preview(e.Data(), previewLines))
		}
	case key.Matches(msg, keys.copyName):
		if e, ok := m.current(); ok {
			return m, cmdCopyToClipboard("name", e.Name())
		}
	case key.Matches(msg, keys.add):
		return m.openInput(purposeAdd, "file to add: ", "", false)
	case key.Matches(msg, keys.export):
		if e, ok := m.current(); ok {
			return m.openInput(purposeExport, "export to: ", e.Name(), false)
		}
	case key.Matches(msg, keys.save):
		if m.container.IsEncrypted() && m.cred.IsZero() {
			return m.openInput(purposePassword, "password: ", "", true)
		}
		return m.startSave()
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		e, ok := m.current()
		if !ok {
			return m, nil
		}
		if _, err := m.container.Delete(e.Name()); err != nil {
			m.showError(err)
			return m, nil
		}
		m.dirty = true
		m.refresh()
		return m, m.setStatus("deleted " + e.Name())
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = modeList
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeInput()
		return m, nil
	case key.Matches(msg, keys.enter):
		value := m.input.Value()
		m.closeInput()
		if value == "" {
			return m, nil
		}
		switch m.purpose {
		case purposeAdd:
			return m, m.cmdReadFile(value)
		case purposeExport:
			e, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdWriteFile(value, e.Data())
		case purposePassword:
			m.cred = crypto.PasswordCredential(value)
			return m.startSave()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) openInput(purpose inputPurpose, prompt, value string, secret bool) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.purpose = purpose
	m.input = textinput.New()
	m.input.Prompt = prompt
	m.input.SetValue(value)
	if secret {
		m.input.EchoMode = textinput.EchoPassword
	}
	return m, m.input.Focus()
}

func (m *model) closeInput() {
	m.mode = modeList
	m.input.Blur()
}

func (m model) startSave() (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(m.cmdSave(), m.spinner.Tick)
}

func (m *model) addEntry(name string, data []byte) tea.Cmd {
	if m.container == nil {
		return nil
	}
	e, err := m.container.Set(name, data)
	if err != nil {
		m.showError(err)
		return nil
	}
	m.dirty = true
	m.refresh()
	m.selectEntry(e.Name())
	return m.setStatus(fmt.Sprintf("added %s", e.Name()))
}

// addPending adds the files that arrived during a save. The container is
// only touched once the save command no longer reads it.
func (m *model) addPending() tea.Cmd {
	pending := m.pending
	m.pending = nil

	var cmds []tea.Cmd
	for _, f := range pending {
		cmds = append(cmds, m.addEntry(filepath.Base(f.path), f.data))
	}
	return tea.Batch(cmds...)
}

// refresh rebuilds the sorted entry view after the container changed.
func (m *model) refresh() {
	if m.container == nil {
		m.entries = nil
		m.idx = 0
		return
	}
	m.entries = m.container.Entries()
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *model) selectEntry(name string) {
	for i, e := range m.entries {
		if e.Name() == name {
			m.idx = i
			return
		}
	}
}

func (m model) current() (*tinyfs.Entry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return nil, false
	}
	return m.entries[m.idx], true
}

func (m *model) showError(err error) {
	m.logger.Debug().Err(err).Str("path", m.path).Msg("browser error")
	m.mode = modeError
	m.errMsg = fmt.Sprintf("%s\n\n%v", app.Describe(err), err)
}

func (m *model) setStatus(s string) tea.Cmd {
	m.status = s
	return cmdClearStatus()
}
