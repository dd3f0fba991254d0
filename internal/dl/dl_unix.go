//go:build (linux || darwin || freebsd) && cgo

package dl

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"
)

// open loads the library with RTLD_NOW so unresolved symbols surface here
// rather than at first call, and RTLD_GLOBAL so libraries loaded afterwards
// resolve against this copy preferentially.
func open(path string) (Handle, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	// Clear any stale error state before loading.
	C.dlerror()
	h := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_GLOBAL)
	if h == nil {
		detail := "unknown dlopen error"
		if msg := C.dlerror(); msg != nil {
			detail = C.GoString(msg)
		}
		return 0, loadFailedError{path: path, detail: detail}
	}
	return Handle(uintptr(h)), nil
}
