package reconcile

import "github.com/ksyq12/glabenv/internal/variable"

// Action identifies what an operation does to the remote store
type Action string

// Plan operation actions
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionNoOp   Action = "noop"
)

// Op is a single reconciliation operation. Variable carries the desired
// payload for creates and updates; it is zero for deletes and no-ops.
type Op struct {
	Action   Action            `json:"action"`
	Key      string            `json:"key"`
	Variable variable.Variable `json:"variable,omitempty"`
	Reason   string            `json:"reason,omitempty"`
}

// Warning records a policy downgrade: an operation that was turned into
// a no-op instead of being silently applied.
type Warning struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// Plan is an ordered sequence of operations: deletes first, then creates,
// then updates, with no-ops recorded at the end. Deletes precede creates
// because the remote store may reject creating a key that still exists in
// a conflicting protected/masked configuration.
type Plan struct {
	Ops      []Op      `json:"ops"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Summary counts operations by action
type Summary struct {
	Creates  int `json:"creates"`
	Updates  int `json:"updates"`
	Deletes  int `json:"deletes"`
	NoOps    int `json:"noops"`
	Warnings int `json:"warnings"`
}

// filter returns ops matching the action, preserving plan order
func (p *Plan) filter(action Action) []Op {
	var ops []Op
	for _, op := range p.Ops {
		if op.Action == action {
			ops = append(ops, op)
		}
	}
	return ops
}

// Creates returns all create operations
func (p *Plan) Creates() []Op { return p.filter(ActionCreate) }

// Updates returns all update operations
func (p *Plan) Updates() []Op { return p.filter(ActionUpdate) }

// Deletes returns all delete operations
func (p *Plan) Deletes() []Op { return p.filter(ActionDelete) }

// NoOps returns all no-op operations
func (p *Plan) NoOps() []Op { return p.filter(ActionNoOp) }

// Changes returns every operation that would mutate the remote store,
// in apply order.
func (p *Plan) Changes() []Op {
	var ops []Op
	for _, op := range p.Ops {
		if op.Action != ActionNoOp {
			ops = append(ops, op)
		}
	}
	return ops
}

// IsEmpty reports whether the plan contains no mutations
func (p *Plan) IsEmpty() bool {
	return len(p.Changes()) == 0
}

// Summary tallies the plan by action
func (p *Plan) Summary() Summary {
	s := Summary{Warnings: len(p.Warnings)}
	for _, op := range p.Ops {
		switch op.Action {
		case ActionCreate:
			s.Creates++
		case ActionUpdate:
			s.Updates++
		case ActionDelete:
			s.Deletes++
		case ActionNoOp:
			s.NoOps++
		}
	}
	return s
}
