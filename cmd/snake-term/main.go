package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/internal/game"
	"gridsnake/internal/term"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.ApplyEnv(os.Getenv)

	fs := flag.NewFlagSet("snake-term", flag.ExitOnError)
	cfg.BindFlags(fs)
	fs.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}
