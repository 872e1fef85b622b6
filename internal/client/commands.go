package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/MKhiriev/tinyfs/internal/utils"
	"github.com/MKhiriev/tinyfs/models"
)

// stdio names standard input or output in file arguments.
const stdio = "-"

const outputFileMode = 0o644

func (a *App) add(ctx context.Context, cmd models.Command) error {
	name, file := cmd.Args[0], cmd.Args[1]

	data, err := a.readInput(file)
	if err != nil {
		return err
	}
	cred, err := a.credentialsFor(ctx, cmd.Container)
	if err != nil {
		return err
	}

	info, err := a.containers.Add(ctx, cmd.Container, models.AddRequest{Name: name, Data: data, Compress: cmd.Compress}, cred)
	if err != nil {
		return err
	}

	stored := ""
	if info.Compressed {
		stored = fmt.Sprintf(", stored %s gzip", utils.HumanSize(info.StoredSize))
	}
	fmt.Fprintf(a.stdout, "added %s (%s%s)\n", info.Name, utils.HumanSize(info.Size), stored)
	return nil
}

func (a *App) extract(ctx context.Context, cmd models.Command) error {
	name, file := cmd.Args[0], cmd.Args[1]

	cred, err := a.credentialsFor(ctx, cmd.Container)
	if err != nil {
		return err
	}
	data, err := a.containers.Extract(ctx, cmd.Container, name, cred)
	if err != nil {
		return err
	}

	if file == stdio {
		_, err = a.stdout.Write(data)
		return err
	}
	if err = afero.WriteFile(a.fs, file, data, outputFileMode); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

func (a *App) remove(ctx context.Context, cmd models.Command) error {
	cred, err := a.credentialsFor(ctx, cmd.Container)
	if err != nil {
		return err
	}
	return a.containers.Remove(ctx, cmd.Container, cmd.Args[0], cred)
}

func (a *App) list(ctx context.Context, cmd models.Command) error {
	cred, err := a.credentialsFor(ctx, cmd.Container)
	if err != nil {
		return err
	}
	entries, err := a.containers.List(ctx, cmd.Container, cred)
	if err != nil {
		return err
	}
	return writeListing(a.stdout, entries, cmd.Long)
}

func (a *App) info(ctx context.Context, cmd models.Command) error {
	info, err := a.containers.Info(ctx, cmd.Container)
	if err != nil {
		return err
	}
	writeInfo(a.stdout, info)
	return nil
}

func (a *App) encrypt(ctx context.Context, cmd models.Command) error {
	cred, err := a.resolveCredential(true)
	if err != nil {
		return err
	}
	if err = a.containers.Encrypt(ctx, cmd.Container, cred); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "encrypted %s\n", cmd.Container)
	return nil
}

func (a *App) decrypt(ctx context.Context, cmd models.Command) error {
	cred, err := a.resolveCredential(false)
	if err != nil {
		return err
	}
	if err = a.containers.Decrypt(ctx, cmd.Container, cred); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "decrypted %s\n", cmd.Container)
	return nil
}

func (a *App) setFlags(ctx context.Context, cmd models.Command) error {
	cred, err := a.credentialsFor(ctx, cmd.Container)
	if err != nil {
		return err
	}
	info, err := a.containers.SetFlags(ctx, cmd.Container, cred, cmd.Flags)
	if err != nil {
		return err
	}
	writeInfo(a.stdout, info)
	return nil
}

func (a *App) browse(ctx context.Context, cmd models.Command) error {
	if a.browser == nil {
		return ErrNoBrowser
	}
	cred, err := a.credentialsFor(ctx, cmd.Container)
	if err != nil {
		return err
	}
	return a.browser.Browse(ctx, cmd.Container, cred)
}

func (a *App) readInput(file string) ([]byte, error) {
	if file == stdio {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(a.fs, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return data, nil
}
