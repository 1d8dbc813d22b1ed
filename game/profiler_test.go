package game

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestProfiler(t *testing.T) (*Profiler, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := NewProfiler(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}
	return p, dir
}

func TestCaptureProfileSyncWritesFiles(t *testing.T) {
	p, dir := newTestProfiler(t)

	if err := p.CaptureProfileSync("window", 20*time.Millisecond); err != nil {
		t.Fatalf("CaptureProfileSync failed: %v", err)
	}
	if p.IsProfiling() {
		t.Error("profiler still busy after a synchronous capture")
	}

	for _, pattern := range []string{"window-*.cpu.prof", "window-*.trace"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 1 {
			t.Errorf("expected one %s file, got %v", pattern, matches)
		}
	}
}

func TestProfilerRejectsOverlappingCaptures(t *testing.T) {
	p, _ := newTestProfiler(t)

	stop, err := p.Start("run")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !p.IsProfiling() {
		t.Fatal("expected the profiler to be busy during a run profile")
	}

	if err := p.CaptureProfileSync("overlap", time.Millisecond); err == nil {
		t.Error("synchronous capture should be rejected while profiling")
	}
	if err := p.CaptureProfile("overlap"); err == nil {
		t.Error("background capture should be rejected while profiling")
	}
	if _, err := p.Start("overlap"); err == nil {
		t.Error("second run profile should be rejected")
	}

	if err := stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if p.IsProfiling() {
		t.Error("profiler still busy after stop")
	}
}
