package client

import (
	"errors"
)

// Exit codes returned by [App.Run].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 255
)

var (
	ErrUsage            = errors.New("usage error")
	ErrKeyFile          = errors.New("key file must hold exactly 32 bytes")
	ErrNoTerminal       = errors.New("stdin is not a terminal")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNoBrowser        = errors.New("browser is not available")
)
