package types

// LoadStatus describes the preload state of one logical solver name.
type LoadStatus string

const (
	// LoadNotAttempted means no preload has been requested for the name.
	LoadNotAttempted LoadStatus = "not_attempted"
	// LoadLoaded means the requested library is resident in the process.
	LoadLoaded LoadStatus = "loaded"
	// LoadAlreadySamePath means a repeat request matched the resident path.
	LoadAlreadySamePath LoadStatus = "already_loaded_same_path"
	// LoadAlreadyDifferentPath means a repeat request conflicted with the
	// resident path and was rejected.
	LoadAlreadyDifferentPath LoadStatus = "already_loaded_different_path"
	// LoadFailed means the most recent attempt did not load.
	LoadFailed LoadStatus = "failed"
)

// SolverStatus is the externally visible view of one registry entry.
type SolverStatus struct {
	// Logical solver name used as the registry key.
	// example: highs
	Name string `json:"name" example:"highs"`
	// Absolute path that was requested for preload.
	// example: /opt/highs/lib/libhighs.so
	RequestedPath string `json:"requested_path,omitempty" example:"/opt/highs/lib/libhighs.so"`
	// Preload state for the name.
	// example: loaded
	Status LoadStatus `json:"status" example:"loaded"`
	// Failure reason, populated only when status is "failed".
	// example: libhighs.so: cannot open shared object file
	Error string `json:"error,omitempty" example:"libhighs.so: cannot open shared object file"`
}

// LibraryInfo reports which binary is actually active in the process for a
// solver name, combining registry state with framework metadata.
type LibraryInfo struct {
	// Logical solver name.
	// example: highs
	Solver string `json:"solver" example:"highs"`
	// True if a custom library was preloaded for the name.
	// example: true
	Preloaded bool `json:"preloaded" example:"true"`
	// Path of the preloaded library, set only when preloaded is true.
	// example: /opt/highs/lib/libhighs.so
	PreloadedPath string `json:"preloaded_path,omitempty" example:"/opt/highs/lib/libhighs.so"`
	// Whether the dependent framework has been initialized in this process.
	// example: true
	FrameworkInitialized bool `json:"framework_initialized" example:"true"`
	// Framework version string, when the framework exposes one.
	// example: 3.6.5
	FrameworkVersion string `json:"framework_version,omitempty" example:"3.6.5"`
	// Path of the library bundled with the framework, when discoverable.
	// example: /usr/lib/casadi/libhighs.so
	FrameworkBundledPath string `json:"framework_bundled_path,omitempty" example:"/usr/lib/casadi/libhighs.so"`
	// Size in bytes of the bundled library, when discoverable.
	// example: 12582912
	FrameworkBundledSize int64 `json:"framework_bundled_size,omitempty" example:"12582912"`
	// Best-effort path of the binary that symbol resolution will hit:
	// the preloaded path if preloaded, else the bundled path if known,
	// else empty (unknown).
	// example: /opt/highs/lib/libhighs.so
	ActivePath string `json:"active_path,omitempty" example:"/opt/highs/lib/libhighs.so"`
}
