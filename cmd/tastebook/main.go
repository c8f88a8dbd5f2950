// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/nroshal/tastebook/internal/client"
	"github.com/nroshal/tastebook/internal/config"
	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	rawVersion := buildVersion
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.New("tastebook", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	// The terminal belongs to the TUI, so the client logs to a file.
	log := logger.NewFileLogger("tastebook", level)

	version := rawVersion
	if version == "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
