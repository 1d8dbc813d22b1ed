package game

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/dop251/goja"
)

// ScriptConfig declares an extra spawn pattern whose layout is computed by JavaScript
type ScriptConfig struct {
	Name string `yaml:"name"`

	// Source is inline JavaScript; File is loaded into Source by LoadConfig
	Source string `yaml:"source"`
	File   string `yaml:"file"`

	MinLevel       int           `yaml:"minLevel"`
	BaseInterval   time.Duration `yaml:"baseInterval"`
	IntervalSpread time.Duration `yaml:"intervalSpread"`
}

// SpawnContext is passed to a pattern script's spawn function
type SpawnContext struct {
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	SpawnY          float64 `json:"spawnY"`
	Margin          float64 `json:"margin"`
	Level           int     `json:"level"`
	TimeMs          int64   `json:"timeMs"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
	PlayerX         float64 `json:"playerX"`
	PlayerY         float64 `json:"playerY"`
}

// SpawnRequest is one projectile returned by a pattern script.
// Zero-valued shape fields fall back to the built-in pattern's configuration.
type SpawnRequest struct {
	Kind         string  `json:"kind"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Radius       float64 `json:"radius"`
	Speed        float64 `json:"speed"`
	Amplitude    float64 `json:"amplitude"`
	Period       float64 `json:"period"`
	Orbit        float64 `json:"orbit"`
	Angle        float64 `json:"angle"`
	AngularSpeed float64 `json:"angularSpeed"`
}

// PatternScript is a compiled pattern script bound to its own JavaScript runtime.
// The runtime persists between calls so scripts may keep state in globals;
// Reset discards that state.
type PatternScript struct {
	name    string
	program *goja.Program
	rng     *rand.Rand
	vm      *goja.Runtime
	spawn   goja.Callable
}

// CompilePatternScript compiles code, which must define a spawn(ctx) function
func CompilePatternScript(name, code string, rng *rand.Rand) (*PatternScript, error) {
	program, err := goja.Compile(name, code, true)
	if err != nil {
		return nil, fmt.Errorf("script %q parse error: %w", name, err)
	}

	s := &PatternScript{name: name, program: program, rng: rng}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset runs the compiled program in a fresh runtime, dropping every global
// the previous runtime accumulated
func (s *PatternScript) Reset() error {
	vm := goja.New()
	if s.rng != nil {
		vm.SetRandSource(goja.RandSource(s.rng.Float64))
	}

	if _, err := vm.RunProgram(s.program); err != nil {
		return fmt.Errorf("script %q execution failed: %w", s.name, err)
	}

	spawnFunc := vm.Get("spawn")
	if spawnFunc == nil || goja.IsUndefined(spawnFunc) {
		return fmt.Errorf("script %q must define a 'spawn' function", s.name)
	}
	spawn, ok := goja.AssertFunction(spawnFunc)
	if !ok {
		return fmt.Errorf("script %q: 'spawn' must be a function", s.name)
	}

	s.vm = vm
	s.spawn = spawn
	return nil
}

// Name returns the script's configured name
func (s *PatternScript) Name() string {
	return s.name
}

// Spawn calls the script's spawn function and decodes its requests
func (s *PatternScript) Spawn(ctx SpawnContext) ([]SpawnRequest, error) {
	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize context: %w", err)
	}

	ctxObj, err := s.vm.RunString(fmt.Sprintf("(%s)", string(ctxJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to build context: %w", err)
	}

	result, err := s.spawn(goja.Undefined(), ctxObj)
	if err != nil {
		return nil, fmt.Errorf("spawn function failed: %w", err)
	}
	if goja.IsUndefined(result) || goja.IsNull(result) {
		return nil, nil
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize result: %w", err)
	}

	var requests []SpawnRequest
	if err := json.Unmarshal(resultJSON, &requests); err != nil {
		return nil, fmt.Errorf("failed to parse script result: %w (result: %s)", err, string(resultJSON))
	}

	for i, r := range requests {
		if _, ok := ParsePatternKind(r.Kind); !ok {
			return nil, fmt.Errorf("request %d: unknown kind %q", i, r.Kind)
		}
	}

	return requests, nil
}

// ValidateScript checks that code compiles and defines a spawn function
func ValidateScript(name, code string) error {
	_, err := CompilePatternScript(name, code, nil)
	return err
}
