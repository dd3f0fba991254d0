package preload

// conflictError signals that a different path is already resident under the
// same solver name. The first path takes precedence and is never overwritten.
type conflictError struct {
	name      string
	resident  string
	requested string
}

func (e conflictError) Error() string {
	return "solver " + e.name + " already preloaded from " + e.resident +
		", refusing to load " + e.requested
}

// IsConflict reports whether err indicates a preload path conflict.
func IsConflict(err error) bool {
	_, ok := err.(conflictError)
	return ok
}

// orderViolationError signals that the dependent framework initialized before
// a preload was recorded for the name, so the substitution can no longer take
// effect in this process.
type orderViolationError struct{ name string }

func (e orderViolationError) Error() string {
	return "framework initialized before solver " + e.name + " was preloaded; " +
		"the bundled library is already resident and the substitution has no effect"
}

// IsOrderViolation reports whether err indicates a preload/framework
// initialization ordering violation.
func IsOrderViolation(err error) bool {
	_, ok := err.(orderViolationError)
	return ok
}

// unknownSolverError signals a name with no registry entry and no
// framework-bundled library.
type unknownSolverError struct{ name string }

func (e unknownSolverError) Error() string { return "solver not found: " + e.name }

// ErrUnknownSolver constructs an unknownSolverError.
func ErrUnknownSolver(name string) error { return unknownSolverError{name: name} }

// IsUnknownSolver reports whether err indicates an unknown solver name.
func IsUnknownSolver(err error) bool {
	_, ok := err.(unknownSolverError)
	return ok
}
