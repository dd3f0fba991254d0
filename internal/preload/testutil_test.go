package preload

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"solverd/internal/dl"
	"solverd/internal/framework"
)

// writeLib creates a stand-in library file and returns its path.
func writeLib(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("\x7fELF"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// countingLoader records every OS load it is asked to perform.
type countingLoader struct {
	calls atomic.Int64
	fail  func(path string) error
}

func (c *countingLoader) open(path string) (dl.Handle, error) {
	c.calls.Add(1)
	if c.fail != nil {
		if err := c.fail(path); err != nil {
			return 0, err
		}
	}
	return dl.Handle(uintptr(c.calls.Load())), nil
}

// fakeObserver is a controllable framework.Observer.
type fakeObserver struct {
	initialized atomic.Bool
	observeErr  error
	version     string
	libs        map[string]framework.BundledLibrary
	observed    atomic.Int64
}

func (f *fakeObserver) Initialized() bool { return f.initialized.Load() }

func (f *fakeObserver) Observe() error {
	f.observed.Add(1)
	if f.observeErr != nil {
		return f.observeErr
	}
	f.initialized.Store(true)
	return nil
}

func (f *fakeObserver) Version() string { return f.version }

func (f *fakeObserver) BundledLibrary(solver string) (framework.BundledLibrary, bool) {
	if !f.initialized.Load() {
		return framework.BundledLibrary{}, false
	}
	lib, ok := f.libs[solver]
	return lib, ok
}

func newTestRegistry(fw framework.Observer) (*Registry, *countingLoader) {
	ld := &countingLoader{}
	r := NewWithConfig(Config{Framework: fw, Load: ld.open})
	return r, ld
}

var errRefused = errors.New("undefined symbol: Highs_run")
