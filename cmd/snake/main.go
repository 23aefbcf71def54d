package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"gridsnake/internal/desktop"
	"gridsnake/internal/game"
)

func init() {
	// glfw must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := game.DefaultConfig()
	cfg.ApplyEnv(os.Getenv)

	fs := flag.NewFlagSet("snake", flag.ExitOnError)
	cfg.BindFlags(fs)
	size := fs.Int("window", 600, "window size in pixels")
	fs.Parse(os.Args[1:])

	if err := desktop.Run(cfg, *size, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}
