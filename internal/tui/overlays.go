// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/tinyfs/models"
)

func renderError(message string) string {
	content := errorStyle.Render("Error") + "\n\n" + message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}

func renderConfirm(name string) string {
	content := "Delete \"" + name + "\"?\n\n" + helpStyle.Render("y: yes    n: no")
	return overlayBoxStyle.Render(content)
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tinyfs"))
	b.WriteString("\n\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date:    ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit:  ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc: back"))

	return overlayBoxStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
