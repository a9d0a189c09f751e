package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"dom-executor/internal/di"
	"dom-executor/internal/infrastructure/config"
	"dom-executor/internal/infrastructure/env"
)

func main() {
	cfg := config.Load(env.NewEnvService())

	var browserBin string
	flag.StringVarP(&cfg.Browser.PageURL, "url", "u", cfg.Browser.PageURL, "page hosting the in-page driver")
	flag.BoolVar(&cfg.Browser.Headless, "headless", cfg.Browser.Headless, "run the browser headless")
	flag.BoolVar(&cfg.Browser.NoSandbox, "no-sandbox", cfg.Browser.NoSandbox, "disable the browser sandbox")
	flag.StringVar(&browserBin, "browser-bin", "", "browser executable (downloaded when empty)")
	flag.StringVar(&cfg.Executor.BrowserFamily, "family", cfg.Executor.BrowserFamily, "required browser family, empty for any")
	flag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")
	flag.BoolVar(&cfg.Log.Console, "log-console", cfg.Log.Console, "also log to stderr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, di.Config{
		Config:     cfg,
		BrowserBin: browserBin,
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer container.Close()

	container.Logger.Info("Session started", "url", cfg.Browser.PageURL)

	result, err := container.Session.Run(ctx)
	if err != nil {
		container.Logger.Error("Session aborted", "error", err)
		fmt.Fprintf(os.Stderr, "session aborted: %v\n", err)
		container.Close()
		os.Exit(1)
	}

	container.Logger.Info("Session finished", "executed", result.Executed, "failed", result.Failed)
}
