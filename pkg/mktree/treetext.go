package mktree

import (
	"strings"
)

// treeIndentUnit is the number of leading connector/whitespace runes
// that make up one nesting level in tree diagram text. Fixed rather
// than auto-detected so depth behavior stays stable across inputs.
const treeIndentUnit = 4

// treeReplacer normalizes ASCII connector spellings to the box-drawing
// characters the depth measurement understands.
var treeReplacer = strings.NewReplacer(
	"|--", "├──",
	"`--", "└──",
	"+--", "├──",
)

// DecodeTreeText parses multi-line tree diagram text, the kind printed
// by the tree utility:
//
//	/root
//	├── src
//	│   └── index.ts
//	└── package.json
//
// Depth is the rune offset of the entry name divided by treeIndentUnit.
// A depth-0 line starting with "/" names a root (the slash is
// stripped). A trailing "/" is an explicit folder marker. Inline
// comments introduced by a whitespace-preceded "#" or "//" are
// stripped; blank and comment-only lines are skipped.
func DecodeTreeText(input string) (Tree, error) {
	type openNode struct {
		depth int
		node  *Node
	}
	var stack []openNode
	var roots Tree

	for _, raw := range strings.Split(input, "\n") {
		line := treeReplacer.Replace(strings.TrimRight(raw, "\r"))
		line = stripInlineComment(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isTreeSummary(line) {
			continue
		}

		depth, name := splitTreeLine(line)
		if name == "" {
			// Connector-only continuation line.
			continue
		}
		marker := NoMarker
		if strings.HasSuffix(name, "/") {
			marker = MarkFolder
			name = strings.TrimSuffix(name, "/")
		}
		if depth == 0 && strings.HasPrefix(name, "/") {
			name = strings.TrimPrefix(name, "/")
		}
		if dotsOnly(name) {
			return nil, parseErrorf(string(FormatTree), nil, "entry %q has no usable name", strings.TrimSpace(raw))
		}
		if strings.Contains(name, "/") {
			return nil, parseErrorf(string(FormatTree), nil, "entry %q contains a path separator", name)
		}

		// Close every open folder at this depth or deeper before
		// attaching, so siblings resume correctly after a subtree.
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		kind := Classify(name, true, marker)
		var node *Node
		if len(stack) == 0 {
			if node = findNode(roots, name, kind); node == nil {
				node = &Node{Kind: kind, Name: name}
				roots = append(roots, node)
			}
		} else {
			parent := stack[len(stack)-1].node
			// A parent that gained a child cannot stay a file.
			if parent.Kind == File {
				parent.Kind = Folder
			}
			// Duplicate entries under one parent merge.
			if node = findNode(parent.Children, name, kind); node == nil {
				node = &Node{Kind: kind, Name: name}
				parent.Children = append(parent.Children, node)
			}
		}
		stack = append(stack, openNode{depth: depth, node: node})
	}

	roots.Sort()
	return roots, nil
}

func findNode(nodes []*Node, name string, kind Kind) *Node {
	for _, n := range nodes {
		if n.Name == name && n.Kind == kind {
			return n
		}
	}
	return nil
}

// splitTreeLine measures the connector/indent prefix of a line and
// returns the nesting depth plus the entry name.
func splitTreeLine(line string) (int, string) {
	prefix := 0
	runes := []rune(line)
	for _, r := range runes {
		switch r {
		case ' ', '\t', '│', '├', '└', '─', '|', '`':
			prefix++
		default:
			return prefix / treeIndentUnit, strings.TrimSpace(string(runes[prefix:]))
		}
	}
	return prefix / treeIndentUnit, ""
}

// stripInlineComment removes a trailing "#" or "//" comment. The
// introducer must be at the start of the line or preceded by
// whitespace, so path-like tokens such as "a//b" survive.
func stripInlineComment(line string) string {
	for i := 0; i < len(line); i++ {
		atStart := i == 0 || line[i-1] == ' ' || line[i-1] == '\t'
		if !atStart {
			continue
		}
		if line[i] == '#' || strings.HasPrefix(line[i:], "//") {
			return line[:i]
		}
	}
	return line
}

// isTreeSummary matches the "N directories, M files" footer the tree
// utility appends.
func isTreeSummary(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return strings.Contains(s, "directorie") && strings.Contains(s, "file")
}
