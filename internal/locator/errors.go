package locator

// notFoundError signals that a configured library path does not exist or is
// not a regular file.
type notFoundError struct{ path string }

func (e notFoundError) Error() string { return "solver library not found: " + e.path }

// IsNotFound reports whether err indicates a missing library file.
func IsNotFound(err error) bool {
	_, ok := err.(notFoundError)
	return ok
}

// notReadableError signals that the current process may not read the file.
type notReadableError struct {
	path  string
	cause error
}

func (e notReadableError) Error() string {
	return "solver library not readable: " + e.path + ": " + e.cause.Error()
}

func (e notReadableError) Unwrap() error { return e.cause }

// IsNotReadable reports whether err indicates a permission problem on the
// library file.
func IsNotReadable(err error) bool {
	_, ok := err.(notReadableError)
	return ok
}
