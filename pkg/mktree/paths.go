package mktree

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodePaths parses a plain sequence of full path strings. The input
// may be a YAML/JSON list or bare newline-separated paths. Paths are
// sorted lexicographically before building (deterministic processing;
// the canonical sort still decides final order) and terminal segments
// classify via the extension allow-list, which is stricter than the
// generic dot rule.
//
// The builder's root list is the child list of the artificial
// super-root, so a path list describing one project directory yields
// that directory as the sole root rather than a nameless wrapper.
func DecodePaths(input string) (Tree, error) {
	if strings.TrimSpace(input) == "" {
		return Tree{}, nil
	}
	paths, err := decodePathList(input)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	b := NewBuilder()
	for _, p := range paths {
		segments := splitPath(p)
		if len(segments) == 0 {
			continue
		}
		last := segments[len(segments)-1]
		isFile := ClassifyByExtension(last, true, NoMarker) == File
		if err := b.Assert(segments, isFile); err != nil {
			return nil, parseErrorf(string(FormatPaths), err, "bad path %q", p)
		}
	}
	return b.Build(), nil
}

func decodePathList(input string) ([]string, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "[") {
		var doc []string
		if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
			return nil, parseErrorf(string(FormatPaths), err, "invalid path list syntax")
		}
		return doc, nil
	}
	// Bare newline-separated paths.
	var paths []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
