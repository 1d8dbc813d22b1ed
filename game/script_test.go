package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCompilePatternScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr string
	}{
		{"syntax error", "function spawn(ctx) {", "parse error"},
		{"missing spawn", "var x = 1;", "must define a 'spawn' function"},
		{"spawn not a function", "var spawn = 3;", "'spawn' must be a function"},
		{"top-level throw", `throw new Error("nope");`, "execution failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompilePatternScript(tt.name, tt.code, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPatternScriptSpawn(t *testing.T) {
	script, err := CompilePatternScript("aimed", `
		function spawn(ctx) {
			return [{kind: "linear", x: ctx.playerX, y: ctx.spawnY, speed: ctx.level}];
		}`, nil)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if script.Name() != "aimed" {
		t.Errorf("expected name aimed, got %s", script.Name())
	}

	requests, err := script.Spawn(SpawnContext{SpawnY: 50, Level: 3, PlayerX: 123.5})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	r := requests[0]
	if r.Kind != "linear" || r.X != 123.5 || r.Y != 50 || r.Speed != 3 {
		t.Errorf("unexpected request %+v", r)
	}
}

func TestPatternScriptKeepsState(t *testing.T) {
	script, err := CompilePatternScript("counter", `
		var calls = 0;
		function spawn(ctx) {
			calls++;
			var out = [];
			for (var i = 0; i < calls; i++) {
				out.push({kind: "linear", x: 100 + i, y: 50});
			}
			return out;
		}`, nil)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	for want := 1; want <= 3; want++ {
		requests, err := script.Spawn(SpawnContext{})
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
		if len(requests) != want {
			t.Errorf("call %d: expected %d requests, got %d", want, want, len(requests))
		}
	}
}

func TestPatternScriptEmptyResult(t *testing.T) {
	script, err := CompilePatternScript("quiet", `function spawn(ctx) { return null; }`, nil)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	requests, err := script.Spawn(SpawnContext{})
	if err != nil || len(requests) != 0 {
		t.Errorf("expected no requests and no error, got %v, %v", requests, err)
	}
}

func TestPatternScriptRejectsUnknownKind(t *testing.T) {
	script, err := CompilePatternScript("odd", `function spawn(ctx) { return [{kind: "spiral", x: 1, y: 1}]; }`, nil)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if _, err := script.Spawn(SpawnContext{}); err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Errorf("expected unknown kind error, got %v", err)
	}
}

func TestPatternScriptRandomIsSeeded(t *testing.T) {
	code := `function spawn(ctx) { return [{kind: "linear", x: Math.random() * 100, y: 50}]; }`

	run := func() float64 {
		script, err := CompilePatternScript("random", code, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("compile failed: %v", err)
		}
		requests, err := script.Spawn(SpawnContext{})
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
		return requests[0].X
	}

	if a, b := run(), run(); a != b {
		t.Errorf("expected identical results from the same seed, got %v and %v", a, b)
	}
}

func TestValidateScript(t *testing.T) {
	if err := ValidateScript("ok", `function spawn(ctx) { return []; }`); err != nil {
		t.Errorf("expected valid script, got %v", err)
	}
	if err := ValidateScript("bad", `function nope() {}`); err == nil {
		t.Error("expected missing spawn to be reported")
	}
}

func TestExampleScriptsCompile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scripts = ExampleScripts()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("example scripts fail validation: %v", err)
	}

	ctx := SpawnContext{Width: cfg.Width, Height: cfg.Height, SpawnY: cfg.SpawnY, Margin: cfg.SpawnMargin, PlayerX: 5}
	for _, sc := range cfg.Scripts {
		script, err := CompilePatternScript(sc.Name, sc.Source, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("%s: compile failed: %v", sc.Name, err)
		}
		requests, err := script.Spawn(ctx)
		if err != nil {
			t.Fatalf("%s: spawn failed: %v", sc.Name, err)
		}
		if len(requests) == 0 {
			t.Errorf("%s: expected at least one projectile", sc.Name)
		}
		for _, r := range requests {
			if r.X < 0 || r.X > cfg.Width {
				t.Errorf("%s: request outside the play area: %+v", sc.Name, r)
			}
		}
	}
}

func TestPatternScriptResetDropsGlobals(t *testing.T) {
	script, err := CompilePatternScript("counter", `
		var calls = 0;
		function spawn(ctx) {
			calls++;
			return [{kind: "linear", x: calls, y: 50}];
		}`, nil)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := script.Spawn(SpawnContext{}); err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
	}
	if err := script.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	requests, err := script.Spawn(SpawnContext{})
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if requests[0].X != 1 {
		t.Errorf("expected counter to restart at 1, got %v", requests[0].X)
	}
}
