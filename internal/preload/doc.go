// Package preload tracks, per logical solver name, which native library has
// been forced into the process ahead of the dependent framework's own load.
// It is structured into small files by concern:
//
//   - registry.go: core Registry type, constructor, Default singleton.
//   - preload.go: Preload/Get/ApplySpec and path identity rules.
//   - types.go: internal entry state and the Result of an attempt.
//   - errors.go: error types and helpers (IsConflict, IsOrderViolation, ...).
//   - guard.go: import-order checking against the framework observer.
//   - report.go: introspection of which binary is actually active.
//   - naming.go: solver name derivation from library filenames.
//   - metrics.go: prometheus instrumentation.
//
// Preloads are permanent. A library loaded into the process cannot be safely
// unloaded once another native module may have bound symbols against it, so
// the Registry never exposes an unload and is never reset during the process
// lifetime (ResetDefault exists for tests only).
//
// External packages should construct a Registry at the composition root and
// inject it; Default() exists for library-style embedding where no
// composition root is available.
package preload
