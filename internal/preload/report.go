package preload

import (
	"solverd/pkg/types"
)

// Report answers "which binary is actually active for name" by combining
// registry state with the framework's self-reported metadata.
//
// When observe is true the framework is initialized as a side effect if it
// was not already. That foreclosure is permanent: no further preloading is
// possible for the remainder of the process, so an observing Report is NOT
// safe to call speculatively; only call it once intended preloading is
// complete. With observe false the framework is never touched and bundled
// metadata is only filled in if the framework happens to be initialized
// already.
//
// The returned error is ErrUnknownSolver when the name has no registry entry
// and no discoverable bundled library; a framework observation failure is
// returned alongside whatever registry-only information is available.
func (r *Registry) Report(name string, observe bool) (types.LibraryInfo, error) {
	info := types.LibraryInfo{Solver: name}

	st, known := r.Get(name)
	if known && st.Status == types.LoadLoaded {
		info.Preloaded = true
		info.PreloadedPath = st.RequestedPath
	}

	if r.fw == nil {
		if !known {
			return info, ErrUnknownSolver(name)
		}
		info.ActivePath = info.PreloadedPath
		return info, nil
	}

	if observe {
		if err := r.fw.Observe(); err != nil {
			info.FrameworkInitialized = r.fw.Initialized()
			if !known {
				return info, ErrUnknownSolver(name)
			}
			info.ActivePath = info.PreloadedPath
			return info, err
		}
	}

	info.FrameworkInitialized = r.fw.Initialized()
	if info.FrameworkInitialized {
		info.FrameworkVersion = r.fw.Version()
		if lib, ok := r.fw.BundledLibrary(name); ok {
			info.FrameworkBundledPath = lib.Path
			info.FrameworkBundledSize = lib.Size
		}
	}

	switch {
	case info.Preloaded:
		info.ActivePath = info.PreloadedPath
	case info.FrameworkBundledPath != "":
		info.ActivePath = info.FrameworkBundledPath
	}

	if !known && info.FrameworkBundledPath == "" {
		return info, ErrUnknownSolver(name)
	}
	return info, nil
}
