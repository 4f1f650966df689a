package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"HabitAuth/internal/cli/api"
	"HabitAuth/internal/cli/commands"
	"HabitAuth/internal/cli/session"
	"HabitAuth/internal/config"
	"HabitAuth/internal/logger"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	sugar := log.Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// одна сессия на запуск процесса
	sess := session.New(api.NewBasicAuthChecker(cfg.PrivateURL(), nil), sugar)
	ctx = session.WithSession(ctx, sess)

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())

	cancel()
	_ = log.Sync()
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("HabitAuth CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
