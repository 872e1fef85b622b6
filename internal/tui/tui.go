// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive container browser.
//
// The browser loads a container into memory through the container service,
// lets the user inspect and edit entries and container flags, and writes
// the result back only when the user saves.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/service"
	"github.com/MKhiriev/tinyfs/models"
)

// ErrUnsavedChanges is returned by Browse when the user quit with changes
// that were never saved.
var ErrUnsavedChanges = errors.New("quit with unsaved changes")

type TUI struct {
	containers service.ContainerService
	build      models.AppBuildInfo
	fs         afero.Fs
}

// New returns a browser. fs is used for adding and exporting files.
func New(containers service.ContainerService, build models.AppBuildInfo, fs afero.Fs) *TUI {
	return &TUI{
		containers: containers,
		build:      build,
		fs:         fs,
	}
}

// Browse runs the browser until the user quits. It logs through the
// logger attached to ctx.
func (t *TUI) Browse(ctx context.Context, path string, cred crypto.Credential) error {
	log := logger.FromContext(ctx)
	m := newModel(ctx, t.containers, path, cred, t.build, t.fs, log)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := final.(model)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.dirty {
		log.Warn().Str("path", path).Msg("browser closed with unsaved changes")
		return ErrUnsavedChanges
	}
	return nil
}
