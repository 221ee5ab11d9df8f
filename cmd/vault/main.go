// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	defer memguard.Purge()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, tui.Error(err.Error()))
		return 2
	}

	log := logger.NewClientLogger("go-pass-vault", cfg.Log)

	vaultStore, err := store.NewVaultStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("error opening vault storage")
		fmt.Fprintln(os.Stderr, tui.Error(client.UserMessage(err)))
		return 1
	}
	defer func() {
		if closeErr := vaultStore.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing vault storage")
		}
	}()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Stringer("build", info).Str("driver", cfg.Storage.Driver).Msg("starting")

	services := service.NewServices(vaultStore, log)
	cli := client.NewApp(services, cfg, info, log)

	if err = cli.Run(ctx, args); err != nil {
		msg := client.UserMessage(err)
		if msg == app.MsgInternalError {
			log.Error().Err(err).Msg("command failed")
		}
		fmt.Fprintln(os.Stderr, tui.Error(msg))

		if client.IsUsageError(err) {
			return 2
		}
		return 1
	}

	return 0
}
