package mktree

import (
	"fmt"
	"strings"
)

// Builder merges an ordered stream of (path, isFile) assertions into a
// deduplicated node tree. Every adapter that works path-wise feeds one.
// A builder is local to one build invocation and never shared.
type Builder struct {
	byPath map[string]*Node
	roots  Tree
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{byPath: make(map[string]*Node)}
}

// Assert records one (path, isFile) fact. Intermediate segments are
// always created as folders; only the final segment of an assertion can
// be a file. If an earlier assertion marked a prefix as a file and this
// assertion extends past it, the file node is upgraded in place to a
// folder, since a prefix with descendants must be one.
func (b *Builder) Assert(segments []string, isFile bool) error {
	if len(segments) == 0 {
		return fmt.Errorf("empty path")
	}
	var parent *Node
	var pathSoFar string

	for i, seg := range segments {
		if seg == "" {
			return fmt.Errorf("empty segment in path %q", strings.Join(segments, "/"))
		}
		if dotsOnly(seg) {
			return fmt.Errorf("segment %q in path %q has no name", seg, strings.Join(segments, "/"))
		}
		if strings.Contains(seg, "/") {
			return fmt.Errorf("segment %q contains a separator", seg)
		}

		if pathSoFar == "" {
			pathSoFar = seg
		} else {
			pathSoFar += "/" + seg
		}
		final := i == len(segments)-1

		node, ok := b.byPath[pathSoFar]
		if ok {
			// An assertion reaching past a file, or a folder
			// assertion landing on one, finalizes it as a folder.
			if node.Kind == File && (!final || !isFile) {
				node.Kind = Folder
			}
			parent = node
			continue
		}

		kind := Folder
		if final && isFile {
			kind = File
		}
		node = &Node{Kind: kind, Name: seg}
		if parent == nil {
			b.roots = append(b.roots, node)
		} else {
			parent.Children = append(parent.Children, node)
		}
		b.byPath[pathSoFar] = node
		parent = node
	}
	return nil
}

// AssertPath splits a slash-separated path and records it. Empty
// segments produced by doubled or trailing separators are dropped.
func (b *Builder) AssertPath(p string, isFile bool) error {
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return fmt.Errorf("path %q has no segments", p)
	}
	return b.Assert(segments, isFile)
}

// Build finalizes the tree: every children slice is put in canonical
// order (folders first, then files, lexicographic within each group).
func (b *Builder) Build() Tree {
	b.roots.Sort()
	return b.roots
}
