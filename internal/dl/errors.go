package dl

// loadFailedError carries the dynamic linker's raw diagnostic. The linker
// does not reliably distinguish a missing dependency from an ABI mismatch,
// so neither do we; the text is surfaced verbatim for the caller's own
// diagnostics.
type loadFailedError struct {
	path   string
	detail string
}

func (e loadFailedError) Error() string {
	return "dynamic load failed for " + e.path + ": " + e.detail
}

// IsLoadFailed reports whether err came from the OS dynamic linker.
func IsLoadFailed(err error) bool {
	_, ok := err.(loadFailedError)
	return ok
}

// unsupportedError signals that this build cannot perform dynamic loads
// (unsupported platform, or cgo disabled on a unix build).
type unsupportedError struct{ reason string }

func (e unsupportedError) Error() string {
	return "dynamic loading unsupported: " + e.reason
}

// IsUnsupported reports whether err indicates the platform loader is
// unavailable in this build.
func IsUnsupported(err error) bool {
	_, ok := err.(unsupportedError)
	return ok
}
