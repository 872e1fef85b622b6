package tui

import "github.com/MKhiriev/tinyfs/internal/tinyfs"

type loadedMsg struct {
	container *tinyfs.Container
	err       error
}

type savedMsg struct {
	err error
}

type fileReadMsg struct {
	path string
	data []byte
	err  error
}

type exportedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
