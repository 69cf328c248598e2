package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"cellgrid/internal/config"
	"cellgrid/internal/eventbus"
	"cellgrid/internal/ui"
	"cellgrid/internal/ui/coordinator"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = configSvc.LoadFromPath(*configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.UISettings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Build the grid document and wire the selection services
	doc, registry, sheet := ui.BuildGrid(cfg)
	coord := coordinator.NewCoordinator(bus, doc, registry, sheet)
	eventLog := ui.NewEventLog(bus)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, coord, eventLog)

	// Create Bubble Tea program. All bus traffic originates from handlers
	// running inside Update, so no separate event forwarding is needed: the
	// publishing Update call redraws when it returns.
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
