package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/fridge-finder/config"
	"github.com/pageza/fridge-finder/internal/console"
	"github.com/pageza/fridge-finder/internal/service"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := console.NewSession(service.NewRecipeService(cfg, nil), os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
