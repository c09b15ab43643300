package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tudu/internal/cli"
	"tudu/internal/config"
	"tudu/internal/logging"
	"tudu/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("tudu", flag.ExitOnError)
	fs.Usage = cli.PrintHelp
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tudu:", err)
		return 2
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tudu:", err)
		return 1
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	logger.Info("starting", "data_path", cfg.DataPath, "args", fs.Args())

	return cli.Run(ctx, fs.Args(), cli.Options{
		Store:  store.New(cfg.DataPath),
		Logger: logger,
	})
}
