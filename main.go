package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"neonbarrage/game"
)

// NewGame wires a simulation to the ebiten frontend
func NewGame(config game.Config, logger zerolog.Logger, profiler *game.Profiler) (*Game, error) {
	sim, err := game.NewSimulation(config, game.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	// Cosmetic randomness stays separate from the simulation RNG
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g := &Game{
		sim:      sim,
		clock:    game.NewClock(nil, config.MaxFrameDelta),
		input:    &keyboardInput{},
		config:   config,
		logger:   logger,
		profiler: profiler,
		exhaust:  NewExhaustParticleSystem(rng),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	g.initBackground(rng)
	g.snap = sim.Snapshot()
	return g, nil
}

// Update advances the simulation by one frame
func (g *Game) Update() error {
	g.frame++
	g.handleInput()

	g.snap = g.sim.Frame(g.clock, g.input)

	g.updateBackground()
	g.exhaust.SetActive(g.snap.State == game.StatePlaying)
	if g.snap.HasPlayer {
		g.exhaust.Update(1/float64(ebiten.TPS()), exhaustOrigin(g.snap.Player))
	}

	g.watchFrameRate()
	return nil
}

// watchFrameRate captures a profile after a sustained frame-rate drop
func (g *Game) watchFrameRate() {
	if g.profiler == nil || g.frame < ebiten.TPS()*2 {
		return
	}
	if ebiten.ActualFPS() >= slowFrameFPS {
		g.slowFrames = 0
		return
	}

	g.slowFrames++
	if g.slowFrames < slowFrameThreshold {
		return
	}
	g.slowFrames = 0
	if g.profiler.IsProfiling() {
		return
	}
	if err := g.profiler.CaptureProfile("fps-drop"); err != nil {
		g.logger.Debug().Err(err).Msg("profile capture skipped")
		return
	}
	g.logger.Warn().
		Float64("fps", ebiten.ActualFPS()).
		Int("enemies", len(g.snap.EnemyProjectiles)).
		Msg("frame rate dropped, capturing profile")
}

// Draw renders the latest snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.snap

	g.drawBackground(screen)
	drawEnemyProjectiles(screen, snap.EnemyProjectiles)
	drawPlayerProjectiles(screen, snap.PlayerProjectiles)
	drawBurstParticles(screen, snap.Particles)
	if snap.HasPlayer {
		g.drawPlayer(screen, snap.Player)
	}
	if g.debug.showHitboxes {
		drawHitboxes(screen, snap)
	}

	drawFlash(screen, snap)
	if snap.State != game.StateNotStarted {
		g.drawHUD(screen, snap)
	}
	if g.debug.showStats {
		g.drawStats(screen, snap)
	}
	g.drawOverlay(screen, snap)
}

// Layout keeps a fixed logical resolution equal to the play area
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.config.Width), int(g.config.Height)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "simulation seed (overrides the config)")
	profileDir := flag.String("profile", "", "capture CPU profiles and traces into this directory when the frame rate drops")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		config = loaded
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	var profiler *game.Profiler
	if *profileDir != "" {
		p, err := game.NewProfiler(*profileDir, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to set up profiler")
		}
		profiler = p
	}

	g, err := NewGame(config, logger, profiler)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game")
	}

	ebiten.SetWindowSize(int(config.Width), int(config.Height))
	ebiten.SetWindowTitle("Neon Barrage")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game loop exited")
	}
}
