// Package main - Entry point for the calk.kg rate proxy and calculation API
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"calk-kg/api"
	"calk-kg/internal/config"
	"calk-kg/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "Config file (default $HOME/.calk-kg.json)")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	config.LoadEnv()
	path := *cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *addr != "" {
		cfg.Server.Address = *addr
	}
	if config.IsProduction() {
		cfg.Logging.Format = "json"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := api.NewFromConfig(ctx, cfg, version)
	if err != nil {
		logging.Fatal("server setup failed", zap.Error(err))
	}

	fmt.Printf("calk.kg server v%s\n", version)
	fmt.Printf("   Rates: http://localhost%s/api/currency-rates\n", cfg.Server.Address)
	fmt.Printf("   API:   http://localhost%s/api/calculate/{slug}\n", cfg.Server.Address)
	fmt.Println()

	if err := server.Run(ctx); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}
