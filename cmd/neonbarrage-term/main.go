package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"neonbarrage/game"
)

// termGame drives a simulation from terminal events
type termGame struct {
	screen tcell.Screen
	sim    *game.Simulation
	clock  *game.Clock
	keys   *heldKeys
	view   viewport
	config game.Config
}

func newTermGame(config game.Config, logger zerolog.Logger, holdWindow time.Duration) (*termGame, error) {
	sim, err := game.NewSimulation(config, game.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()

	g := &termGame{
		screen: screen,
		sim:    sim,
		clock:  game.NewClock(nil, config.MaxFrameDelta),
		keys:   newHeldKeys(holdWindow, nil),
		config: config,
	}
	g.handleResize()
	return g, nil
}

func (g *termGame) handleResize() {
	cols, rows := g.screen.Size()
	g.view = newViewport(cols, rows, g.config)
	g.screen.Sync()
}

// handleInput processes one terminal event and reports whether to keep running
func (g *termGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

		if k, ok := mapKey(ev); ok {
			g.keys.Press(k)
			return true
		}

		switch {
		case ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'r'):
			if g.sim.Restart() || g.sim.Start() {
				g.keys.Release()
				g.clock.Reset()
			}
		case ev.Key() == tcell.KeyRune && ev.Rune() == '1':
			g.sim.ChooseUpgrade(game.UpgradeA)
		case ev.Key() == tcell.KeyRune && ev.Rune() == '2':
			g.sim.ChooseUpgrade(game.UpgradeB)
		}

	case *tcell.EventResize:
		g.handleResize()
	}

	return true
}

func (g *termGame) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	draw(g.screen, g.view, g.sim.Snapshot())
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			snap := g.sim.Frame(g.clock, g.keys)
			draw(g.screen, g.view, snap)
		}
	}
}

func (g *termGame) cleanup() {
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "simulation seed (overrides the config)")
	hold := flag.Duration("hold", 150*time.Millisecond, "how long a key counts as held after its last repeat")
	logPath := flag.String("log", "", "write JSON logs to this file")
	flag.Parse()

	// The terminal is the display, so logs only go to a file
	logger := zerolog.Nop()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		config = loaded
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	g, err := newTermGame(config, logger, *hold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	logger.Info().Int("cols", g.view.cols).Int("rows", g.view.rows).Msg("terminal frontend started")
	g.run()
}
