package mktree

import (
	"fmt"

	"github.com/gammazero/toposort"
)

// OpKind identifies the two operation types a plan can carry.
type OpKind int

const (
	OpCreateDir OpKind = iota
	OpCreateFile
)

func (k OpKind) String() string {
	if k == OpCreateFile {
		return "create-file"
	}
	return "create-dir"
}

// OperationID uniquely identifies an operation within a plan.
type OperationID string

// Operation is one create-directory or create-file step. Path is
// slash-separated and relative to the filesystem collaborator's root.
// DependsOn names the parent directory operation, empty for roots.
type Operation struct {
	ID        OperationID
	Kind      OpKind
	Path      string
	DependsOn OperationID
}

func opID(kind OpKind, path string) OperationID {
	return OperationID(fmt.Sprintf("%s:%s", kind, path))
}

// Plan is an ordered sequence of operations lowered from a canonical
// tree. Emission order is depth-first in canonical child order, so a
// parent directory always precedes its contents and siblings keep the
// folders-before-files, lexicographic order.
type Plan struct {
	ops      []Operation
	index    map[OperationID]int
	resolved bool
}

// NewPlan creates an empty plan for callers assembling operations by
// hand. Adapter-produced trees go through PlanTree instead.
func NewPlan() *Plan {
	return &Plan{index: make(map[OperationID]int)}
}

// PlanTree lowers a canonical tree into a plan.
func PlanTree(tree Tree) *Plan {
	p := NewPlan()
	var lower func(parent OperationID, prefix string, node *Node)
	lower = func(parent OperationID, prefix string, node *Node) {
		path := node.Name
		if prefix != "" {
			path = prefix + "/" + node.Name
		}
		kind := OpCreateDir
		if node.IsFile() {
			kind = OpCreateFile
		}
		op := Operation{ID: opID(kind, path), Kind: kind, Path: path, DependsOn: parent}
		// Merged duplicate assertions lower to a single operation.
		if _, exists := p.index[op.ID]; !exists {
			_ = p.Add(op)
		}
		for _, c := range node.Children {
			lower(op.ID, path, c)
		}
	}
	for _, root := range tree {
		lower("", "", root)
	}
	return p
}

// Add appends an operation to the plan. Duplicate IDs are rejected.
func (p *Plan) Add(ops ...Operation) error {
	for _, op := range ops {
		if _, exists := p.index[op.ID]; exists {
			return fmt.Errorf("operation %q already in plan", op.ID)
		}
		p.index[op.ID] = len(p.ops)
		p.ops = append(p.ops, op)
		p.resolved = false
	}
	return nil
}

// Operations returns a copy of the plan's operations in execution
// order.
func (p *Plan) Operations() []Operation {
	out := make([]Operation, len(p.ops))
	copy(out, p.ops)
	return out
}

// Len returns the number of operations in the plan.
func (p *Plan) Len() int {
	return len(p.ops)
}

// Resolve validates the dependency graph before execution: every
// dependency must exist, the graph must be acyclic, and execution
// order must place each dependency before its dependents. Plans built
// by PlanTree always satisfy this; hand-assembled plans may not.
func (p *Plan) Resolve() error {
	edges := make([]toposort.Edge, 0, len(p.ops))
	for _, op := range p.ops {
		if op.DependsOn == "" {
			continue
		}
		depIdx, ok := p.index[op.DependsOn]
		if !ok {
			return fmt.Errorf("operation %q depends on unknown operation %q", op.ID, op.DependsOn)
		}
		if depIdx >= p.index[op.ID] {
			return fmt.Errorf("operation %q ordered before its dependency %q", op.ID, op.DependsOn)
		}
		edges = append(edges, toposort.Edge{string(op.DependsOn), string(op.ID)})
	}
	if _, err := toposort.Toposort(edges); err != nil {
		return fmt.Errorf("circular dependency detected: %w", err)
	}
	p.resolved = true
	return nil
}
