// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/MKhiriev/tinyfs/internal/app"
	"github.com/MKhiriev/tinyfs/internal/config"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/service"
	"github.com/MKhiriev/tinyfs/internal/validators"
	"github.com/MKhiriev/tinyfs/models"
)

// App is the tinyfs command line tool.
type App struct {
	containers service.ContainerService
	browser    Browser
	validator  validators.Validator
	cfg        *config.StructuredConfig
	flags      *Flags
	build      models.AppBuildInfo

	fs       afero.Fs
	prompter Prompter
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer

	logger *logger.Logger
}

// Option customizes an [App].
type Option func(*App)

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithFs sets the filesystem used for input, output and key files.
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithPrompter sets the password prompt. A nil prompter disables prompting.
func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) { a.build = info }
}

// NewApp wires the tool. browser may be nil, in which case the browse
// command fails with [ErrNoBrowser].
func NewApp(services *service.Services, browser Browser, cfg *config.StructuredConfig, flags *Flags, log *logger.Logger, opts ...Option) *App {
	a := &App{
		containers: services.Containers,
		browser:    browser,
		validator:  validators.NewCommandValidator(),
		cfg:        cfg,
		flags:      flags,
		fs:         afero.NewOsFs(),
		prompter:   NewTerminalPrompter(os.Stdin, os.Stderr),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		logger:     log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) int {
	cmd, err := a.parse(args)
	if err == nil {
		err = a.validator.Validate(ctx, cmd)
	}
	if err != nil {
		a.logger.Debug().Err(err).Strs("args", args).Msg("invalid command line")
		fmt.Fprintf(a.stderr, "tinyfs: %s: %v\n\n", app.MsgInvalidUsage, err)
		a.usage(a.stderr, cmd.Name)
		return ExitUsage
	}

	log := a.logger.With().Str("command", string(cmd.Name)).Str("path", cmd.Container).Logger()
	log.Debug().Strs("args", cmd.Args).Msg("running command")

	if err = a.dispatch(ctx, cmd); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(a.stderr, "tinyfs: %s: %v\n", app.MsgInvalidUsage, err)
			return ExitUsage
		}
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(a.stderr, "tinyfs: %s: %v\n", app.Describe(err), err)
		return ExitFailure
	}
	return ExitOK
}

func (a *App) parse(args []string) (models.Command, error) {
	if len(args) == 0 {
		return models.Command{}, fmt.Errorf("%w: missing command", ErrUsage)
	}

	cmd := models.Command{Name: models.CommandName(args[0])}
	rest := args[1:]
	if validators.TakesContainer(cmd.Name) && len(rest) > 0 {
		cmd.Container, rest = rest[0], rest[1:]
	}
	cmd.Args = rest

	if a.flags != nil {
		cmd.Compress = a.flags.Compress
		cmd.Long = a.flags.Long
		if cmd.Name == models.CommandFlags && a.flags.Config != nil {
			cmd.Flags = a.flags.Config.Update()
		}
	}
	return cmd, nil
}

func (a *App) dispatch(ctx context.Context, cmd models.Command) error {
	switch cmd.Name {
	case models.CommandAdd:
		return a.add(ctx, cmd)
	case models.CommandExtract:
		return a.extract(ctx, cmd)
	case models.CommandRemove:
		return a.remove(ctx, cmd)
	case models.CommandList:
		return a.list(ctx, cmd)
	case models.CommandInfo:
		return a.info(ctx, cmd)
	case models.CommandEncrypt:
		return a.encrypt(ctx, cmd)
	case models.CommandDecrypt:
		return a.decrypt(ctx, cmd)
	case models.CommandFlags:
		return a.setFlags(ctx, cmd)
	case models.CommandBrowse:
		return a.browse(ctx, cmd)
	case models.CommandVersion:
		a.version()
		return nil
	case models.CommandHelp:
		var topic models.CommandName
		if len(cmd.Args) > 0 {
			topic = models.CommandName(cmd.Args[0])
		}
		a.usage(a.stdout, topic)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUsage, cmd.Name)
	}
}
