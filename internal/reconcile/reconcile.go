package reconcile

import (
	"sort"
	"strings"

	"github.com/ksyq12/glabenv/internal/variable"
)

// Options control reconciliation policy
type Options struct {
	// Force allows creating or updating variables with an empty value.
	// Without it, empty values are skipped with a warning so that a
	// redacted export re-imported unchanged cannot wipe remote secrets.
	Force bool

	// Prune emits deletions for keys present remotely but absent locally.
	Prune bool
}

// Reconcile computes the plan of operations needed to make the observed
// remote collection match the desired local collection. It is a pure
// function: no I/O, no retained state. The caller applies the plan.
func Reconcile(desired, observed *variable.Collection, opts Options) *Plan {
	plan := &Plan{}

	// Remote-only keys: delete when pruning, otherwise leave untouched.
	// Sorted so delete order does not depend on the remote listing order.
	var remoteOnly []string
	for _, key := range observed.Keys() {
		if !desired.Has(key) {
			remoteOnly = append(remoteOnly, key)
		}
	}
	sort.Strings(remoteOnly)

	var noops []Op
	for _, key := range remoteOnly {
		if opts.Prune {
			plan.Ops = append(plan.Ops, Op{Action: ActionDelete, Key: key, Reason: "not in file"})
		} else {
			noops = append(noops, Op{Action: ActionNoOp, Key: key, Reason: "remote only; prune disabled"})
		}
	}

	// Local-only keys become creates, in file order for output stability.
	var updates []Op
	for _, key := range desired.Keys() {
		d, _ := desired.Get(key)

		o, exists := observed.Get(key)
		if !exists {
			if d.Value == "" && !opts.Force {
				plan.warn(key, "empty value requires force; create skipped")
				noops = append(noops, Op{Action: ActionNoOp, Key: key, Reason: "empty value; not forced"})
				continue
			}
			plan.Ops = append(plan.Ops, Op{Action: ActionCreate, Key: key, Variable: d})
			continue
		}

		op := comparePair(plan, d, o, opts)
		if op.Action == ActionUpdate {
			updates = append(updates, op)
		} else {
			noops = append(noops, op)
		}
	}

	plan.Ops = append(plan.Ops, updates...)
	plan.Ops = append(plan.Ops, noops...)
	return plan
}

// comparePair classifies a key present on both sides
func comparePair(plan *Plan, d, o variable.Variable, opts Options) Op {
	// Structural differences always force an update: the remote store may
	// refuse value writes against a conflicting protected/masked config.
	if !d.StructuralEquals(o) {
		reason := structuralDiff(d, o)
		if d.Value == "" && !opts.Force {
			plan.warn(d.Key, "structural update will write an empty value")
		}
		return Op{Action: ActionUpdate, Key: d.Key, Variable: d, Reason: reason}
	}

	// A masked variable's observed value is a redaction sentinel, not
	// ground truth. The local file is the declared intent.
	if o.Masked {
		if d.Value == "" {
			plan.warn(d.Key, "masked variable with empty local value; update skipped")
			return Op{Action: ActionNoOp, Key: d.Key, Reason: "masked; empty local value"}
		}
		return Op{Action: ActionUpdate, Key: d.Key, Variable: d, Reason: "masked value unverifiable"}
	}

	if d.Value == o.Value {
		return Op{Action: ActionNoOp, Key: d.Key, Reason: "unchanged"}
	}
	if d.Value == "" && !opts.Force {
		plan.warn(d.Key, "empty value requires force; update skipped")
		return Op{Action: ActionNoOp, Key: d.Key, Reason: "empty value; not forced"}
	}
	return Op{Action: ActionUpdate, Key: d.Key, Variable: d, Reason: "value"}
}

// structuralDiff names the structural fields that differ
func structuralDiff(d, o variable.Variable) string {
	var fields []string
	if d.Protected != o.Protected {
		fields = append(fields, "protected")
	}
	if d.Masked != o.Masked {
		fields = append(fields, "masked")
	}
	if d.Type != o.Type {
		fields = append(fields, "variable_type")
	}
	return strings.Join(fields, ", ")
}

func (p *Plan) warn(key, reason string) {
	p.Warnings = append(p.Warnings, Warning{Key: key, Reason: reason})
}
