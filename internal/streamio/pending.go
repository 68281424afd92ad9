package streamio

import "os"

// PendingOutput is a scoped handle over an output path that has not yet been
// committed. Callers register the path as soon as they create it and defer
// Cleanup; a successful operation calls Commit first, so Cleanup becomes a
// no-op, while a failed operation leaves Commit uncalled and Cleanup removes
// the half-written file.
//
// This replaces the single global "unlink on fail" slot the reference tools
// used: each output file gets its own handle instead of sharing one
// process-wide variable, so nested or sequential operations in the same
// process (as the library form of these operations now allows) can't step on
// each other's pending path.
type PendingOutput struct {
	path      string
	committed bool
}

// NewPendingOutput registers path as not yet committed.
func NewPendingOutput(path string) *PendingOutput {
	return &PendingOutput{path: path}
}

// Commit marks the output as successfully produced; Cleanup becomes a no-op.
func (p *PendingOutput) Commit() {
	p.committed = true
}

// Cleanup removes the output file if it was never committed. Safe to call
// unconditionally via defer.
func (p *PendingOutput) Cleanup() {
	if p.committed {
		return
	}
	_ = os.Remove(p.path)
}
