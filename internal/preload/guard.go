package preload

import "solverd/pkg/types"

// Violation describes a preload/framework ordering violation for a solver.
type Violation struct {
	// Solver is the logical name whose preload came too late (or never).
	Solver string
}

func (v Violation) String() string {
	return orderViolationError{name: v.Solver}.Error()
}

// CheckOrder is the advisory form of the import-order guard, and the
// default: the caller decides whether to log or ignore the returned
// violation.
//
// A violation exists when the dependent framework has already completed its
// one-way initialization and no successful preload is on record for name: the
// framework's bundled library is resident and a later preload cannot displace
// it. While the framework is uninitialized the check always passes, because
// preloading is still possible.
func (r *Registry) CheckOrder(name string) (Violation, bool) {
	if r.fw == nil || !r.fw.Initialized() {
		return Violation{}, false
	}
	if st, ok := r.Get(name); ok && st.Status == types.LoadLoaded {
		return Violation{}, false
	}
	recordOrderViolation()
	return Violation{Solver: name}, true
}

// CheckOrderStrict is the fail-fast variant of CheckOrder for callers that
// must abort when the substitution can no longer take effect. It returns an
// OrderViolation error (see IsOrderViolation) instead of an advisory value.
func (r *Registry) CheckOrderStrict(name string) error {
	if _, violated := r.CheckOrder(name); violated {
		return orderViolationError{name: name}
	}
	return nil
}
