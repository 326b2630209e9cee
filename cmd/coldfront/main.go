package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmazurek/coldfront/internal/config"
	"github.com/kmazurek/coldfront/internal/docs"
	"github.com/kmazurek/coldfront/internal/engine"
	"github.com/kmazurek/coldfront/internal/narrator"
	"github.com/kmazurek/coldfront/internal/rng"
	"github.com/kmazurek/coldfront/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("COLDFRONT_DEBUG") != "" {
		f, err := tea.LogToFile("coldfront-debug.log", "coldfront")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	opts := tui.Options{
		Engine:    engine.New(rng.New(cfg.Seed), docs.NewProcedural()),
		MaxTurns:  cfg.MaxTurns,
		TypeDelay: time.Duration(cfg.TypeDelayMS) * time.Millisecond,
		NoColor:   cfg.NoColor,
	}

	if cfg.GeminiAPIKey != "" {
		n, err := narrator.New(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Error creating narrator: %v\n", err)
			os.Exit(1)
		}
		defer n.Close()
		opts.Narrator = n
	}

	if err := tui.Run(opts); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
