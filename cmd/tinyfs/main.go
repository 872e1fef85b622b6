package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/tinyfs/internal/app"
	"github.com/MKhiriev/tinyfs/internal/client"
	"github.com/MKhiriev/tinyfs/internal/config"
	"github.com/MKhiriev/tinyfs/internal/logger"
	"github.com/MKhiriev/tinyfs/internal/service"
	"github.com/MKhiriev/tinyfs/internal/store"
	"github.com/MKhiriev/tinyfs/internal/tui"
	"github.com/MKhiriev/tinyfs/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	fset := pflag.NewFlagSet("tinyfs", pflag.ContinueOnError)
	fset.SetOutput(os.Stderr)
	flags := client.RegisterFlags(fset)

	helpRequested := false
	if err := fset.Parse(argv); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			return client.ExitUsage
		}
		helpRequested = true
	}

	cfg, err := config.GetStructuredConfig(flags.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinyfs: %s: %v\n", app.MsgInvalidConfig, err)
		return client.ExitUsage
	}

	log := logger.NewClientLogger("tinyfs", cfg.App.LogFile, cfg.App.LogLevel)
	log.Debug().
		Str("log_level", cfg.App.LogLevel).
		Str("key_file", cfg.Crypto.KeyFile).
		Bool("password_set", cfg.Crypto.Password != "").
		Any("codec", cfg.Codec).
		Msg("received configs")

	fs := afero.NewOsFs()
	storages := store.NewStorages(fs, log)
	services, err := service.NewServices(storages, cfg.Codec, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinyfs: %s: %v\n", app.MsgInvalidConfig, err)
		return client.ExitFailure
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	browser := tui.New(services.Containers, build, fs)
	cli := client.NewApp(services, browser, cfg, flags, log,
		client.WithFs(fs),
		client.WithBuildInfo(build),
	)

	ctx, stop := signal.NotifyContext(log.WithContext(context.Background()), os.Interrupt)
	defer stop()

	args := fset.Args()
	if helpRequested {
		args = []string{string(models.CommandHelp)}
	}
	return cli.Run(ctx, args)
}
