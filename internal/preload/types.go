package preload

import (
	"solverd/internal/dl"
	"solverd/pkg/types"
)

// entry is the registry's record for one logical solver name.
type entry struct {
	name string
	// requestedPath is the canonical path of the resident library once
	// status is Loaded; immutable from that point on.
	requestedPath string
	status        types.LoadStatus
	failReason    string
	// handle is owned by the registry for the process lifetime and is never
	// handed out for direct manipulation.
	handle dl.Handle
	// inflight is non-nil while a load for this name is in progress; racers
	// wait on it and then re-evaluate.
	inflight chan struct{}
}

func (e *entry) view() types.SolverStatus {
	return types.SolverStatus{
		Name:          e.name,
		RequestedPath: e.requestedPath,
		Status:        e.status,
		Error:         e.failReason,
	}
}

// Result describes the outcome of a single Preload attempt.
type Result struct {
	// Status is the attempt outcome: LoadLoaded for a fresh load,
	// LoadAlreadySamePath for an idempotent repeat, LoadAlreadyDifferentPath
	// for a rejected conflict, LoadFailed otherwise.
	Status types.LoadStatus
	// Path is the canonical path resident for the name, when one is.
	Path string
}
