// Package dl loads native shared libraries into the current process with the
// widest symbol visibility the platform offers, so that libraries loaded
// later resolve their symbols against the preloaded copy first.
//
// Loads are permanent: there is deliberately no Close or unload. Unloading a
// library that another native module has already bound symbols against is
// undefined behavior, so handles simply live for the remainder of the
// process.
package dl

// Handle is an opaque reference to a library resident in the process. It is
// only useful for existence checks; the underlying pointer is never exposed.
type Handle uintptr

// Valid reports whether h refers to a loaded library.
func (h Handle) Valid() bool { return h != 0 }

// Open loads the shared library at path into the current process.
// Implementations are per-platform; see dl_unix.go and dl_windows.go.
func Open(path string) (Handle, error) {
	return open(path)
}
