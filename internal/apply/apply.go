// Package apply executes reconciliation plans against the remote
// variable store.
//
// The reconciler is pure; the applier owns the side effects. Remote
// errors are reported per-operation with the offending key and are never
// retried. Fail-fast is the default policy; best-effort continuation is
// a caller choice, not a reconciler property.
package apply

import (
	"context"

	"github.com/ksyq12/glabenv/internal/gitlab"
	"github.com/ksyq12/glabenv/internal/logger"
	"github.com/ksyq12/glabenv/internal/reconcile"
)

// Result records the outcome of a single applied operation
type Result struct {
	Op  reconcile.Op
	Err error
}

// Applier executes plans against a Store
type Applier struct {
	Store gitlab.Store

	// ContinueOnError keeps applying subsequent operations after a
	// remote failure instead of stopping at the first one.
	ContinueOnError bool
}

// New creates an Applier with the fail-fast policy
func New(store gitlab.Store) *Applier {
	return &Applier{Store: store}
}

// Apply executes every mutating operation in the plan, in plan order.
// It returns the per-operation results and, under the fail-fast policy,
// the first remote error encountered. Under best-effort the returned
// error is nil and callers inspect the results.
func (a *Applier) Apply(ctx context.Context, plan *reconcile.Plan) ([]Result, error) {
	var results []Result

	for _, op := range plan.Changes() {
		err := a.applyOp(ctx, op)
		results = append(results, Result{Op: op, Err: err})
		if err != nil {
			logger.Error("Failed to %s variable %s: %v", op.Action, op.Key, err)
			if !a.ContinueOnError {
				return results, err
			}
		}
	}
	return results, nil
}

func (a *Applier) applyOp(ctx context.Context, op reconcile.Op) error {
	switch op.Action {
	case reconcile.ActionCreate:
		return a.Store.CreateVariable(ctx, op.Variable)
	case reconcile.ActionUpdate:
		return a.Store.UpdateVariable(ctx, op.Variable)
	case reconcile.ActionDelete:
		return a.Store.DeleteVariable(ctx, op.Key)
	default:
		return nil
	}
}

// Failed filters the results down to the operations that errored
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
