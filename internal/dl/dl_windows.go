//go:build windows

package dl

import (
	"golang.org/x/sys/windows"
)

// open loads the DLL with an altered search path so dependencies that sit
// next to the requested library resolve from its directory. Windows has no
// RTLD_GLOBAL equivalent; a loaded module already satisfies later loads of
// the same module name process-wide, which is the broadest visibility the
// platform offers.
func open(path string) (Handle, error) {
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return 0, loadFailedError{path: path, detail: err.Error()}
	}
	return Handle(h), nil
}
