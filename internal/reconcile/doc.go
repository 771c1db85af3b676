// Package reconcile computes the operations needed to make a remote
// GitLab variable collection match a local variables file.
//
// Reconcile is a pure function from (desired, observed, options) to a
// Plan: an ordered list of create, update, delete, and no-op operations
// plus warnings for anything downgraded by policy. It performs no I/O;
// the apply package executes plans against the remote store.
//
// # Classification
//
// Keys are bucketed by set membership first: local-only keys become
// creates, remote-only keys become deletes when pruning is enabled, and
// shared keys are compared field by field.
//
// # Masked Values
//
// The remote store never returns the true value of a masked variable, so
// value equality cannot be checked for them. When the local file carries
// a non-empty value the reconciler emits an update (the file is the
// declared intent); when the local value is empty the pair is skipped
// with a warning, preventing a redacted export from wiping a secret when
// re-imported unchanged.
//
// # Empty Values
//
// Writing an empty value always requires the force option. Without it,
// the offending create or update is downgraded to a no-op and a warning
// is recorded on the plan.
//
// # Ordering
//
// Deletes come first (sorted by key), then creates and updates in the
// order the local file lists them. Deleting stale entries before creating
// avoids remote-side conflicts when a key is being recreated with a
// different protected or masked configuration.
package reconcile
