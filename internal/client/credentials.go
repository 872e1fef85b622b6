package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/MKhiriev/tinyfs/internal/crypto"
	"github.com/MKhiriev/tinyfs/internal/store"
	"github.com/MKhiriev/tinyfs/models"
)

type terminalPrompter struct {
	in  *os.File
	out io.Writer
}

// NewTerminalPrompter reads passwords from in without echo. It fails with
// [ErrNoTerminal] when in is not a terminal.
func NewTerminalPrompter(in *os.File, out io.Writer) Prompter {
	return &terminalPrompter{in: in, out: out}
}

func (p *terminalPrompter) ReadPassword(prompt string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	fmt.Fprint(p.out, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// credentialsFor returns the credential needed to open path: none for a
// missing or plain container, otherwise whatever [App.resolveCredential]
// finds.
func (a *App) credentialsFor(ctx context.Context, path string) (crypto.Credential, error) {
	info, err := a.containers.Info(ctx, path)
	if errors.Is(err, store.ErrContainerNotExist) {
		return crypto.Credential{}, nil
	}
	if err != nil {
		return crypto.Credential{}, err
	}
	if !info.Encrypted {
		return crypto.Credential{}, nil
	}
	return a.resolveCredential(false)
}

// resolveCredential tries the key file, then TINYFS_PASS, then an
// interactive prompt. confirm asks for the password twice.
func (a *App) resolveCredential(confirm bool) (crypto.Credential, error) {
	if path := a.cfg.Crypto.KeyFile; path != "" {
		key, err := afero.ReadFile(a.fs, path)
		if err != nil {
			return crypto.Credential{}, fmt.Errorf("read key file: %w", err)
		}
		if len(key) != crypto.KeySize {
			return crypto.Credential{}, fmt.Errorf("%w: %s has %d", ErrKeyFile, path, len(key))
		}
		a.logger.Debug().Str("key_file", path).Msg("using key file")
		return crypto.KeyCredential(key), nil
	}

	if a.cfg.Crypto.Password != "" {
		return crypto.PasswordCredential(a.cfg.Crypto.Password), nil
	}

	if a.prompter == nil {
		return crypto.Credential{}, models.ErrCredentialsRequired
	}
	pw, err := a.prompter.ReadPassword("Password: ")
	if errors.Is(err, ErrNoTerminal) {
		return crypto.Credential{}, models.ErrCredentialsRequired
	}
	if err != nil {
		return crypto.Credential{}, err
	}
	if pw == "" {
		return crypto.Credential{}, models.ErrCredentialsRequired
	}

	if confirm {
		again, err := a.prompter.ReadPassword("Repeat password: ")
		if err != nil {
			return crypto.Credential{}, err
		}
		if again != pw {
			return crypto.Credential{}, ErrPasswordMismatch
		}
	}
	return crypto.PasswordCredential(pw), nil
}
