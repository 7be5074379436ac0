package mktree

import (
	"strings"
)

// Format selects which adapter decodes an input.
type Format string

const (
	FormatTree     Format = "tree"     // box-drawing tree diagram text
	FormatNested   Format = "nested"   // nested name → null-or-mapping
	FormatFlat     Format = "flat"     // full path → bool mapping
	FormatSegments Format = "segments" // list of pre-split segment lists
	FormatPaths    Format = "paths"    // list of full path strings
)

var formats = []Format{FormatTree, FormatNested, FormatFlat, FormatSegments, FormatPaths}

// ParseFormat validates a format tag. Unknown tags are a configuration
// error, reported before any input is read.
func ParseFormat(tag string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(tag)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", &UnknownFormatError{Tag: tag}
}

func supportedFormats() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Decode runs the adapter selected by format over raw input text and
// returns the canonical tree. Blank input yields an empty tree for
// every format; malformed input yields a *ParseError.
func Decode(format Format, input string) (Tree, error) {
	switch format {
	case FormatTree:
		return DecodeTreeText(input)
	case FormatNested:
		return DecodeNested(input)
	case FormatFlat:
		return DecodeFlat(input)
	case FormatSegments:
		return DecodeSegments(input)
	case FormatPaths:
		return DecodePaths(input)
	default:
		return nil, &UnknownFormatError{Tag: string(format)}
	}
}
