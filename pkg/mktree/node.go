package mktree

import (
	"sort"
	"strings"
)

// Kind distinguishes folder nodes from file nodes.
type Kind int

const (
	Folder Kind = iota
	File
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Folder:
		return "folder"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Node is the canonical unit every format adapter converges to.
// Name is a single path segment and never contains a separator.
// Children is populated only for Folder nodes.
type Node struct {
	Kind     Kind
	Name     string
	Children []*Node
}

// NewFolder creates an empty folder node.
func NewFolder(name string) *Node {
	return &Node{Kind: Folder, Name: name}
}

// NewFile creates a file node. File nodes never carry children.
func NewFile(name string) *Node {
	return &Node{Kind: File, Name: name}
}

// IsFile reports whether the node is a file.
func (n *Node) IsFile() bool {
	return n.Kind == File
}

// Child returns the child with the given name and kind, or nil.
func (n *Node) Child(name string, kind Kind) *Node {
	for _, c := range n.Children {
		if c.Name == name && c.Kind == kind {
			return c
		}
	}
	return nil
}

// Tree is an ordered sequence of root nodes. Adapters may yield more
// than one root when the input has multiple top-level entries.
type Tree []*Node

// IsEmpty reports whether the tree has no roots.
func (t Tree) IsEmpty() bool {
	return len(t) == 0
}

// Sort puts the tree in canonical order: within every children slice,
// folders before files, each group lexicographic by name. The sort is
// recursive, stable and idempotent.
func (t Tree) Sort() {
	sortNodes(t)
	for _, root := range t {
		root.sortChildren()
	}
}

func (n *Node) sortChildren() {
	sortNodes(n.Children)
	for _, c := range n.Children {
		c.sortChildren()
	}
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Kind != b.Kind {
			return a.Kind == Folder
		}
		return a.Name < b.Name
	})
}

// Walk visits every node depth-first in child order, passing the
// slash-joined path relative to the tree root. It stops early if fn
// returns false.
func (t Tree) Walk(fn func(path string, node *Node) bool) {
	var walk func(prefix string, node *Node) bool
	walk = func(prefix string, node *Node) bool {
		path := node.Name
		if prefix != "" {
			path = prefix + "/" + node.Name
		}
		if !fn(path, node) {
			return false
		}
		for _, c := range node.Children {
			if !walk(path, c) {
				return false
			}
		}
		return true
	}
	for _, root := range t {
		if !walk("", root) {
			return
		}
	}
}

// Paths returns the slash-joined path of every node in walk order.
// Useful for round-trip comparisons in tests and dry runs.
func (t Tree) Paths() []string {
	var out []string
	t.Walk(func(path string, _ *Node) bool {
		out = append(out, path)
		return true
	})
	return out
}

// String renders the tree as an indented listing, one node per line,
// folders suffixed with "/". Intended for debugging and dry-run output.
func (t Tree) String() string {
	var sb strings.Builder
	t.Walk(func(path string, node *Node) bool {
		depth := strings.Count(path, "/")
		sb.WriteString(strings.Repeat("    ", depth))
		sb.WriteString(node.Name)
		if node.Kind == Folder {
			sb.WriteString("/")
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
