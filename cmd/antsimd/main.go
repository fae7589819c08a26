package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"antgrid/internal/server"
	_ "antgrid/internal/sims/ant"

	"git.sr.ht/~sircmpwn/getopt"
)

var version string

func main() {
	logger := log.New(os.Stderr, "", log.Ltime|log.Lshortfile)

	var configPath, listenAddr string
	opts, _, err := getopt.Getopts(os.Args, "c:l:d")
	if err != nil {
		logger.Fatal(err)
	}
	debug := false
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'l':
			listenAddr = opt.Value
		case 'd':
			debug = true
		}
	}
	if version != "" {
		logger.Printf("version: %s", version)
	}

	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		logger.Fatal(err)
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}
	cfg.Debug = cfg.Debug || debug

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		logger.Fatal(err)
	}
	logger.Println("Shutting down...")
}
