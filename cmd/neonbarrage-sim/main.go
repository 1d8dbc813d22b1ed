package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"neonbarrage/game"
)

// runResult summarizes one run of the simulation
type runResult struct {
	Ticks    int
	Score    int
	Level    int
	Duration time.Duration
	Upgrades int
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 1, "simulation seed")
	ticks := flag.Int("ticks", 60*60*5, "total ticks to simulate across all runs")
	dt := flag.Duration("dt", 16*time.Millisecond, "fixed delta per tick")
	runs := flag.Int("runs", 1, "number of runs; the simulation restarts after each game over")
	policy := flag.String("upgrade", "alternate", "upgrade policy: a, b or alternate")
	examples := flag.Bool("examples", false, "add the bundled example pattern scripts")
	check := flag.Bool("check", false, "only validate the config and its pattern scripts")
	profileDir := flag.String("profile", "", "write a CPU profile of the whole run into this directory")
	profileWindow := flag.Duration("profile-window", 0, "with -profile, capture a CPU profile and trace of only the first window of the run")
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
	if *examples {
		config.Scripts = append(config.Scripts, game.ExampleScripts()...)
	}
	config.Seed = *seed

	if *check {
		os.Exit(checkScripts(config, logger))
	}

	chooser, err := upgradePolicy(*policy)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid flags")
	}

	sim, err := game.NewSimulation(config, game.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create simulation")
	}

	var profiler *game.Profiler
	if *profileDir != "" {
		profiler, err = game.NewProfiler(*profileDir, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to set up profiler")
		}
	}

	start := time.Now()
	var results []runResult
	switch {
	case profiler != nil && *profileWindow > 0:
		done := make(chan []runResult, 1)
		go func() {
			done <- simulate(sim, *ticks, *runs, *dt, chooser)
		}()
		if err := profiler.CaptureProfileSync("sim-window", *profileWindow); err != nil {
			logger.Error().Err(err).Msg("profile capture failed")
		}
		results = <-done

	case profiler != nil:
		stop, err := profiler.Start("sim")
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to start profile")
		}
		results = simulate(sim, *ticks, *runs, *dt, chooser)
		if err := stop(); err != nil {
			logger.Error().Err(err).Msg("failed to stop profile")
		}

	default:
		results = simulate(sim, *ticks, *runs, *dt, chooser)
	}
	logger.Info().
		Int("runs", len(results)).
		Dur("wall", time.Since(start)).
		Msg("simulation finished")

	printSummary(results)
}

// simulate drives the simulation with the autopilot until the tick budget
// or the run count is exhausted
func simulate(sim *game.Simulation, ticks, runs int, dt time.Duration, choose func(n int) game.Upgrade) []runResult {
	pilot := newAutopilot()
	var results []runResult
	current := runResult{}

	sim.Start()
	pilot.Observe(sim.Snapshot())

	for i := 0; i < ticks; i++ {
		snap := sim.Tick(dt, pilot.Snapshot())
		pilot.Observe(snap)
		current.Ticks++

		switch snap.State {
		case game.StateUpgradePause:
			sim.ChooseUpgrade(choose(current.Upgrades))
			current.Upgrades++

		case game.StateGameOver:
			current.Score = snap.DisplayScore()
			current.Level = snap.Level
			current.Duration = sim.Now()
			results = append(results, current)
			current = runResult{}

			if len(results) >= runs {
				return results
			}
			sim.Restart()
			pilot.Observe(sim.Snapshot())
		}
	}

	// The tick budget ran out mid-run
	if current.Ticks > 0 {
		current.Score = sim.Snapshot().DisplayScore()
		current.Level = sim.Level()
		current.Duration = sim.Now()
		results = append(results, current)
	}
	return results
}

// upgradePolicy maps the -upgrade flag to a chooser over the upgrade count so far
func upgradePolicy(name string) (func(n int) game.Upgrade, error) {
	switch name {
	case "a":
		return func(int) game.Upgrade { return game.UpgradeA }, nil
	case "b":
		return func(int) game.Upgrade { return game.UpgradeB }, nil
	case "alternate":
		return func(n int) game.Upgrade {
			if n%2 == 0 {
				return game.UpgradeA
			}
			return game.UpgradeB
		}, nil
	default:
		return nil, fmt.Errorf("unknown upgrade policy %q", name)
	}
}

// checkScripts validates the config and each pattern script and returns the exit code
func checkScripts(config game.Config, logger zerolog.Logger) int {
	if err := config.Validate(); err != nil {
		logger.Error().Err(err).Msg("config invalid")
		return 1
	}

	failed := 0
	for _, sc := range config.Scripts {
		if err := game.ValidateScript(sc.Name, sc.Source); err != nil {
			logger.Error().Err(err).Str("script", sc.Name).Msg("script invalid")
			failed++
			continue
		}
		logger.Info().Str("script", sc.Name).Int("minLevel", sc.MinLevel).Msg("script ok")
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func printSummary(results []runResult) {
	fmt.Printf("%-4s %8s %6s %6s %9s %10s\n", "run", "ticks", "score", "level", "upgrades", "time")
	for i, r := range results {
		fmt.Printf("%-4d %8d %6d %6d %9d %10v\n", i+1, r.Ticks, r.Score, r.Level, r.Upgrades, r.Duration.Truncate(time.Millisecond))
	}
}
