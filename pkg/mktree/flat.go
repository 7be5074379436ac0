package mktree

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeFlat parses a flat mapping from full path string to a truthy
// flag, YAML or JSON. Each key is split on "/" and fed to the builder;
// intermediate segments become folders, the final segment classifies by
// the generic dot rule. Entries with a falsy value are skipped.
func DecodeFlat(input string) (Tree, error) {
	if strings.TrimSpace(input) == "" {
		return Tree{}, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, parseErrorf(string(FormatFlat), err, "invalid mapping syntax")
	}

	paths := make([]string, 0, len(doc))
	for p, flag := range doc {
		if truthy(flag) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	b := NewBuilder()
	for _, p := range paths {
		segments := splitPath(p)
		if len(segments) == 0 {
			return nil, parseErrorf(string(FormatFlat), nil, "path %q has no segments", p)
		}
		last := segments[len(segments)-1]
		isFile := Classify(last, true, NoMarker) == File
		if err := b.Assert(segments, isFile); err != nil {
			return nil, parseErrorf(string(FormatFlat), err, "bad path %q", p)
		}
	}
	return b.Build(), nil
}

func splitPath(p string) []string {
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != "" && !strings.EqualFold(t, "false")
	case nil:
		return false
	default:
		return true
	}
}
