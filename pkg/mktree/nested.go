package mktree

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeNested parses a nested mapping from name to either null (a
// file) or another mapping (a folder, recursively). The text may be
// YAML or JSON. An empty mapping value falls back to the
// ClassifyEmptyMapping policy; scalar values other than null are
// rejected so typos surface instead of guessing.
func DecodeNested(input string) (Tree, error) {
	if strings.TrimSpace(input) == "" {
		return Tree{}, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, parseErrorf(string(FormatNested), err, "invalid mapping syntax")
	}

	b := NewBuilder()
	if err := assertNested(b, nil, doc); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func assertNested(b *Builder, prefix []string, mapping map[string]any) error {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := append(append([]string(nil), prefix...), key)
		switch value := mapping[key].(type) {
		case nil:
			if err := b.Assert(path, true); err != nil {
				return parseErrorf(string(FormatNested), err, "bad entry")
			}
		case map[string]any:
			if len(value) == 0 {
				kind := ClassifyEmptyMapping(key)
				if err := b.Assert(path, kind == File); err != nil {
					return parseErrorf(string(FormatNested), err, "bad entry")
				}
				continue
			}
			if err := b.Assert(path, false); err != nil {
				return parseErrorf(string(FormatNested), err, "bad entry")
			}
			if err := assertNested(b, path, value); err != nil {
				return err
			}
		default:
			return parseErrorf(string(FormatNested), nil,
				"entry %q: expected null or nested mapping, got %T", strings.Join(path, "/"), value)
		}
	}
	return nil
}
