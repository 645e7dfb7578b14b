// Package pendingset implements a deduplicating LIFO work queue over
// small integer ids.
//
// The factor-graph solver uses two independent instances — one tracking
// which items need a variable-update pass, one tracking which factors
// need a factor-update pass — to drive its fixed-point iteration to
// convergence. A presence bitmap gives O(1) membership and idempotent
// insertion; an append-only stack gives O(1) insertion and O(1) pop of
// *some* id, in LIFO order. LIFO order is a cache-locality choice, not a
// correctness requirement: the solver's fixed point is attracting
// regardless of visitation order.
package pendingset
