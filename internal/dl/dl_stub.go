//go:build !windows && (!(linux || darwin || freebsd) || !cgo)

package dl

func open(path string) (Handle, error) {
	return 0, unsupportedError{reason: "no dynamic loader for this platform/build"}
}
