// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/oelbekkali/colisops/internal/adapter"
	"github.com/oelbekkali/colisops/internal/config"
	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/service"
	"github.com/oelbekkali/colisops/internal/session"
	"github.com/oelbekkali/colisops/internal/store"
	"github.com/oelbekkali/colisops/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("colisops-console")

	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend, err := adapter.NewHTTPBackendAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	credentials, err := store.NewFileCredentialStore(cfg.Storage.CredentialsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential store")
	}

	manager := session.NewManager(backend, credentials, log)
	services := service.NewServices(backend, log, manager.Invalidate)

	ctx := context.Background()
	if err := manager.Bootstrap(ctx); err != nil {
		log.Warn().Err(err).Msg("stored session could not be restored")
	}

	watcher := session.NewExpiryWatcher(manager)
	watcher.Start(ctx, 30*time.Second)
	defer watcher.Stop()

	ui := tui.New(manager, services, log)
	if err := ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
