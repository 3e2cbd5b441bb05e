// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package main

import (
	"fmt"

	"github.com/oelbekkali/colisops/internal/config"
	"github.com/oelbekkali/colisops/internal/devserver"
	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("colisops-devserver")

	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := devserver.NewHandler(cfg, log)

	srv := server.NewServer(handler.Init(), cfg, log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("devserver run error")
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
