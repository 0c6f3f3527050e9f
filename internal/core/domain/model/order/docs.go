// Package order contains the Order aggregate and its lifecycle state machine.
// The aggregate owns every status transition: manual updates, administrative
// bulk overrides, and scheduled automatic progression all go through methods
// on Order so the lifecycle invariants hold no matter who the caller is.
package order
