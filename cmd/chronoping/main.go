// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/wneessen/chronoping/internal/config"
	"github.com/wneessen/chronoping/internal/logger"
	"github.com/wneessen/chronoping/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	var conf *config.Config
	var err error

	confPath := flag.String("config", "", "path to the config file")
	flag.Parse()
	switch {
	case *confPath != "":
		conf, err = config.NewFromFile(filepath.Dir(*confPath), filepath.Base(*confPath))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to load config from file: %s\n", err)
			os.Exit(1)
		}
	default:
		conf, err = config.New()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to load default config: %s\n", err)
			os.Exit(1)
		}
	}

	log := logger.New(conf.Log.Level, logger.Opts{Format: conf.Log.Format, DontLogIP: conf.Log.DontLogIP})
	log.Debug("logging configured", slog.String("level", conf.Log.Level.String()),
		slog.String("format", conf.Log.Format))

	srv := server.New(conf, log, version)

	log.Info("starting chronoping service", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = srv.Start(ctx); err != nil {
		log.Error("chronoping service terminated", logger.Err(err))
		cancel()
		os.Exit(1)
	}
	log.Info("shutting down chronoping service")
}
