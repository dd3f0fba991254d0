package preload

import (
	"errors"
	"testing"

	"solverd/internal/framework"
)

func TestReportPreloadedSolver(t *testing.T) {
	d := t.TempDir()
	p := writeLib(t, d, "libhighs.so")
	fw := &fakeObserver{
		version: "3.6.5",
		libs: map[string]framework.BundledLibrary{
			"highs": {Path: "/usr/lib/casadi/libhighs.so", Size: 1024},
		},
	}
	r, _ := newTestRegistry(fw)
	if _, err := r.Preload("highs", p); err != nil {
		t.Fatalf("preload: %v", err)
	}

	info, err := r.Report("highs", true)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !info.Preloaded || info.PreloadedPath == "" {
		t.Fatalf("expected preloaded info, got %+v", info)
	}
	if !info.FrameworkInitialized {
		t.Fatalf("observing report must initialize the framework")
	}
	if info.FrameworkVersion != "3.6.5" {
		t.Fatalf("unexpected version %q", info.FrameworkVersion)
	}
	if info.FrameworkBundledPath != "/usr/lib/casadi/libhighs.so" || info.FrameworkBundledSize != 1024 {
		t.Fatalf("bundled metadata missing: %+v", info)
	}
	// The preloaded copy wins symbol resolution.
	if info.ActivePath != info.PreloadedPath {
		t.Fatalf("active path must be the preloaded path, got %q", info.ActivePath)
	}
	if got := fw.observed.Load(); got != 1 {
		t.Fatalf("expected one observation, got %d", got)
	}
}

func TestReportBundledOnly(t *testing.T) {
	fw := &fakeObserver{
		libs: map[string]framework.BundledLibrary{
			"ipopt": {Path: "/usr/lib/casadi/libipopt.so", Size: 99},
		},
	}
	r, _ := newTestRegistry(fw)

	info, err := r.Report("ipopt", true)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if info.Preloaded {
		t.Fatalf("nothing was preloaded: %+v", info)
	}
	if info.FrameworkBundledPath == "" {
		t.Fatalf("expected bundled path once framework is initialized")
	}
	if info.ActivePath != info.FrameworkBundledPath {
		t.Fatalf("active path must fall back to the bundled library")
	}
}

func TestReportPassiveNeverObserves(t *testing.T) {
	fw := &fakeObserver{
		libs: map[string]framework.BundledLibrary{
			"highs": {Path: "/usr/lib/casadi/libhighs.so", Size: 1},
		},
	}
	d := t.TempDir()
	r, _ := newTestRegistry(fw)
	if _, err := r.Preload("highs", writeLib(t, d, "libhighs.so")); err != nil {
		t.Fatalf("preload: %v", err)
	}

	info, err := r.Report("highs", false)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if got := fw.observed.Load(); got != 0 {
		t.Fatalf("passive report must not observe, got %d observations", got)
	}
	if info.FrameworkInitialized {
		t.Fatalf("framework must remain uninitialized")
	}
	if info.FrameworkBundledPath != "" {
		t.Fatalf("bundled metadata must stay hidden before init")
	}
	if info.ActivePath != info.PreloadedPath {
		t.Fatalf("unexpected active path %q", info.ActivePath)
	}
}

func TestReportUnknownSolver(t *testing.T) {
	fw := &fakeObserver{}
	r, _ := newTestRegistry(fw)
	_, err := r.Report("glpk", true)
	if err == nil || !IsUnknownSolver(err) {
		t.Fatalf("expected unknown solver, got %v", err)
	}
}

func TestReportObserveFailureKeepsRegistryInfo(t *testing.T) {
	fw := &fakeObserver{observeErr: errors.New("core library missing")}
	d := t.TempDir()
	r, _ := newTestRegistry(fw)
	if _, err := r.Preload("highs", writeLib(t, d, "libhighs.so")); err != nil {
		t.Fatalf("preload: %v", err)
	}

	info, err := r.Report("highs", true)
	if err == nil {
		t.Fatalf("expected observation error to surface")
	}
	if !info.Preloaded || info.ActivePath != info.PreloadedPath {
		t.Fatalf("registry-side info must survive: %+v", info)
	}
}

func TestReportNoFramework(t *testing.T) {
	d := t.TempDir()
	r, _ := newTestRegistry(nil)
	if _, err := r.Preload("highs", writeLib(t, d, "libhighs.so")); err != nil {
		t.Fatalf("preload: %v", err)
	}
	info, err := r.Report("highs", true)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if info.FrameworkInitialized || info.FrameworkBundledPath != "" {
		t.Fatalf("no framework configured: %+v", info)
	}
	if info.ActivePath != info.PreloadedPath {
		t.Fatalf("unexpected active path %q", info.ActivePath)
	}
}
