package mktree

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeSegments parses a sequence of path-segment sequences, e.g.
//
//	- [root, src, index.ts]
//	- [root, README.md]
//
// Semantics match the flat mapping, minus the string splitting: the
// final segment classifies by the generic dot rule, everything before
// it is a folder.
func DecodeSegments(input string) (Tree, error) {
	if strings.TrimSpace(input) == "" {
		return Tree{}, nil
	}
	var doc [][]string
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, parseErrorf(string(FormatSegments), err, "invalid segment list syntax")
	}

	b := NewBuilder()
	for _, segments := range doc {
		if len(segments) == 0 {
			return nil, parseErrorf(string(FormatSegments), nil, "entry with no segments")
		}
		last := segments[len(segments)-1]
		isFile := Classify(last, true, NoMarker) == File
		if err := b.Assert(segments, isFile); err != nil {
			return nil, parseErrorf(string(FormatSegments), err, "bad entry %q", strings.Join(segments, "/"))
		}
	}
	return b.Build(), nil
}
