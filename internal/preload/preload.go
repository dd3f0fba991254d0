package preload

import (
	"os"
	"sort"

	"solverd/internal/common/fsutil"
	"solverd/internal/dl"
	"solverd/internal/locator"
	"solverd/pkg/types"
)

// Preload forces the library at path into the process under the logical
// solver name.
//
//   - No resident library for name: the path is validated, loaded, and
//     recorded; the result status is LoadLoaded.
//   - Same path already resident: idempotent success without a second OS
//     load; the result status is LoadAlreadySamePath.
//   - A different path already resident: the request is rejected with a
//     Conflict error and process state is untouched; the first path keeps
//     precedence.
//
// A failed attempt (unusable path, dynamic-linker rejection) is recorded for
// introspection but does not claim the name: a later attempt may still
// succeed. Failures are not retried automatically; a failed dynamic load is
// generally not retryable without a different path.
func (r *Registry) Preload(name, path string) (Result, error) {
	for {
		r.mu.Lock()
		e, ok := r.entries[name]
		if ok && e.inflight != nil {
			// Another caller is loading this name; adopt its outcome.
			ch := e.inflight
			r.mu.Unlock()
			<-ch
			continue
		}
		if ok && e.status == types.LoadLoaded {
			resident := e.requestedPath
			r.mu.Unlock()
			if samePath(resident, path) {
				recordPreload(resultIdempotent)
				return Result{Status: types.LoadAlreadySamePath, Path: resident}, nil
			}
			recordPreload(resultConflict)
			return Result{Status: types.LoadAlreadyDifferentPath, Path: resident},
				conflictError{name: name, resident: resident, requested: path}
		}
		// No resident library (either never attempted or a prior failure):
		// claim the name so racers wait instead of double-loading.
		claim := &entry{name: name, status: types.LoadNotAttempted, inflight: make(chan struct{})}
		r.entries[name] = claim
		r.mu.Unlock()
		return r.loadAndSettle(claim, name, path)
	}
}

// loadAndSettle performs the expensive locate+load outside the registry lock,
// then publishes the outcome and releases waiters.
func (r *Registry) loadAndSettle(claim *entry, name, path string) (Result, error) {
	abs, err := r.locate(path)
	var (
		handle  dl.Handle
		loadErr error
	)
	if err == nil {
		handle, loadErr = r.load(abs)
	}

	r.mu.Lock()
	ch := claim.inflight
	claim.inflight = nil
	switch {
	case err != nil:
		claim.status = types.LoadFailed
		claim.failReason = err.Error()
	case loadErr != nil:
		claim.requestedPath = abs
		claim.status = types.LoadFailed
		claim.failReason = loadErr.Error()
	default:
		claim.requestedPath = abs
		claim.status = types.LoadLoaded
		claim.handle = handle
	}
	r.mu.Unlock()
	close(ch)

	if err != nil {
		recordPreload(locateResult(err))
		return Result{Status: types.LoadFailed}, err
	}
	if loadErr != nil {
		recordPreload(resultLoadFailed)
		return Result{Status: types.LoadFailed, Path: abs}, loadErr
	}
	recordPreload(resultLoaded)
	return Result{Status: types.LoadLoaded, Path: abs}, nil
}

// ApplySpec preloads every entry of a parsed configuration mapping. Entries
// fail independently: one unusable path does not abort the others. The
// returned map carries the error per failed name; it is empty on full
// success.
func (r *Registry) ApplySpec(spec map[string]string) map[string]error {
	names := make([]string, 0, len(spec))
	for name := range spec {
		names = append(names, name)
	}
	sort.Strings(names)

	failures := make(map[string]error)
	for _, name := range names {
		if _, err := r.Preload(name, spec[name]); err != nil {
			failures[name] = err
		}
	}
	return failures
}

// samePath decides path identity for idempotence checks: canonical string
// equality first, filesystem identity (hard links, case folding) as a
// fallback when both paths resolve.
func samePath(resident, requested string) bool {
	canon, err := fsutil.Canonical(requested)
	if err == nil && canon == resident {
		return true
	}
	fi1, err1 := os.Stat(resident)
	fi2, err2 := os.Stat(requested)
	if err1 != nil || err2 != nil {
		return false
	}
	return os.SameFile(fi1, fi2)
}

func locateResult(err error) string {
	switch {
	case locator.IsNotFound(err):
		return resultNotFound
	case locator.IsNotReadable(err):
		return resultNotReadable
	default:
		return resultLoadFailed
	}
}
