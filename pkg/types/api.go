package types

// SolversResponse wraps the list of registry entries returned by GET /solvers.
type SolversResponse struct {
	// All known registry entries, sorted by name.
	Solvers []SolverStatus `json:"solvers"`
}

// StatusResponse is the payload of GET /status.
type StatusResponse struct {
	// True once the startup preload pass has attempted every configured entry.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// Whether the dependent framework has been initialized in this process.
	// example: false
	FrameworkInitialized bool `json:"framework_initialized" example:"false"`
	// Where the preload configuration came from ("env", "file", "flags" or "none").
	// example: env
	ConfigSource string `json:"config_source,omitempty" example:"env"`
	// Per-solver preload states.
	Solvers []SolverStatus `json:"solvers"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: solver not found: glpk
	Error string `json:"error" example:"solver not found: glpk"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
