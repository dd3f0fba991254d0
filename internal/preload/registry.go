package preload

import (
	"sort"
	"sync"
	"sync/atomic"

	"solverd/internal/dl"
	"solverd/internal/framework"
	"solverd/internal/locator"
	"solverd/pkg/types"
)

// Registry is the single source of truth for which solver libraries have
// been preloaded into this process. Concurrent Preload calls for different
// names do not contend on the OS load; calls for the same name are
// serialized so exactly one load happens and every caller observes it.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	ready   atomic.Bool

	fw     framework.Observer
	locate func(string) (string, error)
	load   func(string) (dl.Handle, error)
}

// Config encapsulates the registry's collaborators. Zero values select the
// real implementations; tests inject fakes.
type Config struct {
	// Framework is the dependent-framework observer consulted by the order
	// guard and the reporter. May be nil when no framework is present.
	Framework framework.Observer
	// Locate validates a configured path. Defaults to locator.Locate.
	Locate func(string) (string, error)
	// Load performs the OS dynamic load. Defaults to dl.Open.
	Load func(string) (dl.Handle, error)
}

// New constructs a Registry with default collaborators.
func New(fw framework.Observer) *Registry {
	return NewWithConfig(Config{Framework: fw})
}

// NewWithConfig constructs a Registry from Config, applying defaults for
// unset collaborators.
func NewWithConfig(cfg Config) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		fw:      cfg.Framework,
		locate:  cfg.Locate,
		load:    cfg.Load,
	}
	if r.locate == nil {
		r.locate = locator.Locate
	}
	if r.load == nil {
		r.load = dl.Open
	}
	return r
}

// Get returns a read-only view of the entry for name. It never blocks on an
// in-flight load and never loads anything itself.
func (r *Registry) Get(name string) (types.SolverStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok || e.inflight != nil {
		return types.SolverStatus{Name: name, Status: types.LoadNotAttempted}, false
	}
	return e.view(), true
}

// Snapshot returns all settled entries, sorted by name.
func (r *Registry) Snapshot() []types.SolverStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.SolverStatus, 0, len(r.entries))
	for _, e := range r.entries {
		if e.inflight != nil {
			continue
		}
		out = append(out, e.view())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// MarkReady records that the startup preload pass has attempted every
// configured entry. Manual preloads afterwards compose with that state.
func (r *Registry) MarkReady() { r.ready.Store(true) }

// Ready reports whether the startup preload pass has completed.
func (r *Registry) Ready() bool { return r.ready.Load() }

// FrameworkInitialized reports whether the dependent framework has completed
// its one-way initialization in this process.
func (r *Registry) FrameworkInitialized() bool {
	return r.fw != nil && r.fw.Initialized()
}

// Default singleton for library-style embedding, in the spirit of an
// explicit composition root: InitDefault wins only if called before the
// first Default().
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, constructing one without a
// framework observer on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		if defaultRegistry == nil {
			defaultRegistry = New(nil)
		}
	})
	return defaultRegistry
}

// InitDefault installs r as the process-wide registry. Only the first call
// (before any Default()) has an effect.
func InitDefault(r *Registry) {
	defaultOnce.Do(func() {
		defaultRegistry = r
	})
}

// ResetDefault clears the process-wide registry. Not thread-safe; tests only.
// Note that already-loaded native libraries stay resident regardless.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultRegistry = nil
}
