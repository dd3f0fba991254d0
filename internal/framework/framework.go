// Package framework models the boundary to the dependent optimization
// framework (the native module that bundles its own solver libraries, e.g. a
// CasADi installation). The subsystem only ever reads the framework's
// self-reported metadata; it never calls into its solve or compile APIs.
//
// Framework initialization is one-way: once the framework's core library is
// resident in the process it cannot be unloaded or reinitialized, so the
// initialized flag is monotonic.
package framework

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"solverd/internal/common/fsutil"
	"solverd/internal/dl"
)

// Core library name probed when none is configured.
const defaultCoreName = "casadi"

// BundledLibrary describes a solver library shipped inside the framework's
// install directory.
type BundledLibrary struct {
	Path string
	Size int64
}

// Observer is the read-only view of the dependent framework's state.
//
// Observe finalizes the framework's initialization as a side effect: it must
// never be called while the caller still intends to preload, because any
// solver library the framework bundles is resolved at that moment.
type Observer interface {
	// Initialized reports whether the framework has completed its own
	// initialization in this process. Monotonic: once true, always true.
	Initialized() bool
	// Observe initializes the framework if it is not initialized yet and
	// returns when its metadata may be queried. Idempotent.
	Observe() error
	// Version returns the framework's self-reported version, or "" when
	// unknown or not yet observed.
	Version() string
	// BundledLibrary reports the library the framework bundles for solver,
	// if the framework is initialized and one is discoverable.
	BundledLibrary(solver string) (BundledLibrary, bool)
}

// Runtime observes a framework installed in a directory on disk. Observing
// loads the framework's core shared library through the platform loader,
// which is exactly the action that makes initialization irreversible.
type Runtime struct {
	dir  string
	core string

	// loadFn performs the OS load; replaced in tests.
	loadFn func(string) (dl.Handle, error)

	once    sync.Once
	obsErr  error
	inited  atomic.Bool
	version string
}

// NewRuntime returns a Runtime for the framework installed at dir. core is
// the logical name of the framework's core library; empty selects the
// default ("casadi").
func NewRuntime(dir, core string) *Runtime {
	if core == "" {
		core = defaultCoreName
	}
	return &Runtime{dir: dir, core: core, loadFn: dl.Open}
}

// Initialized reports whether the framework core library is resident.
func (r *Runtime) Initialized() bool { return r.inited.Load() }

// MarkInitialized records that the host application initialized the
// framework through its own channels (without going through Observe). The
// transition is one-way.
func (r *Runtime) MarkInitialized() { r.inited.Store(true) }

// Observe loads the framework core library if needed and snapshots its
// metadata. The first call decides the outcome for the process lifetime.
func (r *Runtime) Observe() error {
	r.once.Do(func() {
		dir, err := fsutil.Canonical(r.dir)
		if err != nil {
			r.obsErr = fmt.Errorf("framework dir: %w", err)
			return
		}
		core, ok := findLibrary(dir, r.core)
		if !ok {
			r.obsErr = fmt.Errorf("framework core library %q not found under %s", r.core, dir)
			return
		}
		if !r.inited.Load() {
			if _, err := r.loadFn(core.Path); err != nil {
				r.obsErr = err
				return
			}
		}
		r.dir = dir
		r.version = readVersion(dir)
		r.inited.Store(true)
	})
	return r.obsErr
}

// Version returns the framework version read at observation time.
func (r *Runtime) Version() string { return r.version }

// BundledLibrary searches the install directory for the library the
// framework would use for solver. Only meaningful once initialized.
func (r *Runtime) BundledLibrary(solver string) (BundledLibrary, bool) {
	if !r.inited.Load() {
		return BundledLibrary{}, false
	}
	return findLibrary(r.dir, solver)
}

// findLibrary probes platform-specific filename patterns for a solver name
// inside dir.
func findLibrary(dir, solver string) (BundledLibrary, bool) {
	for _, name := range libPatterns(solver) {
		p := filepath.Join(dir, name)
		fi, err := os.Stat(p)
		if err == nil && fi.Mode().IsRegular() {
			return BundledLibrary{Path: p, Size: fi.Size()}, true
		}
	}
	return BundledLibrary{}, false
}

func libPatterns(solver string) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"lib" + solver + ".dll", solver + ".dll"}
	case "darwin":
		return []string{"lib" + solver + ".dylib", "lib" + solver + ".so"}
	default:
		return []string{"lib" + solver + ".so"}
	}
}

// readVersion returns the contents of a VERSION file in dir, if present.
func readVersion(dir string) string {
	b, err := os.ReadFile(filepath.Join(dir, "VERSION"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
