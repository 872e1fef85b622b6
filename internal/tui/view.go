package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/tinyfs/internal/tinyfs"
	"github.com/MKhiriev/tinyfs/internal/utils"
)

const (
	listWidth   = 32
	digestChars = 16
)

func (m model) View() string {
	var body string
	switch m.mode {
	case modeError:
		body = m.overlay(renderError(m.errMsg))
	case modeBuildInfo:
		body = m.overlay(renderBuildInfo(m.build))
	case modeConfirmDelete:
		name := ""
		if e, ok := m.current(); ok {
			name = e.Name()
		}
		body = m.overlay(renderConfirm(name))
	default:
		body = m.mainView()
	}
	return appStyle.Render(body)
}

func (m model) overlay(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width-4, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

func (m model) mainView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tinyfs  " + m.path))
	if m.dirty {
		b.WriteString(dirtyStyle.Render("  [modified]"))
	}
	b.WriteString("\n")
	if m.container != nil {
		b.WriteString(helpStyle.Render(containerFlags(m.container)))
	}
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " working...")
	case m.container == nil:
		b.WriteString("container not loaded")
	default:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), m.detailView()))
	}
	b.WriteString("\n\n")

	if m.mode == modeInput {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: confirm  esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("a add  x export  d delete  z gzip  i case  u utf8  e encrypt  c copy  n copy name  s save  ? about  q quit"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	return b.String()
}

func (m model) listView() string {
	if len(m.entries) == 0 {
		return listPaneStyle.Width(listWidth).Render("no entries")
	}

	lines := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		marker := " "
		if e.IsCompressed() {
			marker = "z"
		}
		line := fmt.Sprintf("%s %-*s %8s", marker, listWidth-12, fitText(e.Name(), listWidth-12), utils.HumanSize(e.Size()))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return listPaneStyle.Width(listWidth).Render(strings.Join(lines, "\n"))
}

func (m model) detailView() string {
	e, ok := m.current()
	if !ok {
		return ""
	}
	data := e.Data()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(e.Name()))
	fmt.Fprintf(&b, "size:    %s\n", utils.HumanSize(e.Size()))
	fmt.Fprintf(&b, "stored:  %s (%s)\n", utils.HumanSize(e.StoredSize()), utils.Ratio(e.StoredSize(), e.Size()))
	fmt.Fprintf(&b, "flags:   %s\n", e.Flags())
	fmt.Fprintf(&b, "blake3:  %s\n", utils.ShortDigest(data, digestChars))
	if !e.IsCompressed() {
		if ok, err := e.IsCompressionRecommended(); err == nil && ok {
			b.WriteString(helpStyle.Render("gzip would make this entry smaller (z)"))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(preview(data, previewLines))
	return b.String()
}

func containerFlags(c *tinyfs.Container) string {
	return fmt.Sprintf("%d entries  encrypted:%s  case-insensitive:%s  utf8:%s",
		c.Len(), onOff(c.IsEncrypted()), onOff(c.IsCaseInsensitive()), onOff(c.UsesUTF8Names()))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
