package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Profiler captures CPU profiles and execution traces when a frontend
// notices slow frames, or for a whole headless run
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          zerolog.Logger
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		logger:          logger,
	}, nil
}

// CaptureProfile records a CPU profile and a trace in the background.
// Captures closer together than the cooldown are rejected.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := p.baseName(reason)

	go func() {
		defer p.end()
		if err := p.capture(baseName, p.captureDuration); err != nil {
			p.logger.Error().Err(err).Str("capture", baseName).Msg("profile capture failed")
		}
	}()

	return nil
}

// CaptureProfileSync records a CPU profile and a trace for duration and
// blocks until both files are written. It ignores the cooldown but not a
// capture already in progress.
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	p.mu.Lock()
	p.lastCaptureTime = time.Now()
	p.mu.Unlock()

	return p.capture(p.baseName(reason), duration)
}

// Start begins a CPU profile that runs until the returned stop function is called
func (p *Profiler) Start(reason string) (stop func() error, err error) {
	if err := p.begin(); err != nil {
		return nil, err
	}

	path := filepath.Join(p.profilesDir, p.baseName(reason)+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		p.end()
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		p.end()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}

	return func() error {
		defer p.end()
		pprof.StopCPUProfile()
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close profile file: %w", err)
		}
		p.logger.Info().Str("path", path).Msg("CPU profile saved")
		return nil
	}, nil
}

// begin claims the profiler; only one capture may run at a time
func (p *Profiler) begin() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	p.isProfiling = true
	return nil
}

func (p *Profiler) end() {
	p.mu.Lock()
	p.isProfiling = false
	p.mu.Unlock()
}

// IsProfiling reports whether a background capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) baseName(reason string) string {
	return fmt.Sprintf("%s-%s", reason, time.Now().Format("20060102-150405"))
}

// capture runs the CPU profile and the trace in parallel
func (p *Profiler) capture(baseName string, duration time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)

	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName, duration)
	}()
	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName, duration)
	}()
	wg.Wait()

	p.logMemStats(baseName)

	if cpuErr != nil {
		return cpuErr
	}
	return traceErr
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	p.logger.Info().Str("path", path).Msg("CPU profile saved")
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	p.logger.Info().Str("path", path).Msg("trace saved")
	return nil
}

func (p *Profiler) logMemStats(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info().
		Str("capture", baseName).
		Uint64("allocKB", m.Alloc/1024).
		Uint64("sysKB", m.Sys/1024).
		Uint32("numGC", m.NumGC).
		Uint64("heapObjects", m.HeapObjects).
		Msg("memory stats at capture time")
}
