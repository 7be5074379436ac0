package mktree

import (
	"path"
	"strings"
)

// Marker is an explicit file/folder hint carried by some source
// formats (a null leaf in a nested mapping, a trailing "/" in tree
// text). When present it overrides any heuristic.
type Marker int

const (
	NoMarker Marker = iota
	MarkFolder
	MarkFile
)

// Classify decides folder vs. file for one path segment.
//
// Precedence: an explicit marker always wins. Otherwise a segment is a
// File iff it contains a dot AND is the final segment of its path;
// intermediate segments are always folders regardless of dots, so
// names like ".bunfig.toml" only classify as files in terminal
// position. A segment consisting solely of dots is never a file.
func Classify(segment string, final bool, marker Marker) Kind {
	switch marker {
	case MarkFolder:
		return Folder
	case MarkFile:
		return File
	}
	if !final {
		return Folder
	}
	if dotsOnly(segment) {
		return Folder
	}
	if strings.Contains(segment, ".") {
		return File
	}
	return Folder
}

// fileExtensions is the allow-list consulted by ClassifyByExtension.
// Broader than the generic dot rule: common language, config and data
// format extensions.
var fileExtensions = map[string]struct{}{
	".c": {}, ".cc": {}, ".cpp": {}, ".cs": {}, ".css": {}, ".csv": {},
	".env": {}, ".go": {}, ".h": {}, ".hpp": {}, ".html": {}, ".ini": {},
	".java": {}, ".js": {}, ".json": {}, ".jsx": {}, ".kt": {}, ".lock": {},
	".md": {}, ".mod": {}, ".php": {}, ".png": {}, ".py": {}, ".rb": {},
	".rs": {}, ".sh": {}, ".sql": {}, ".sum": {}, ".svg": {}, ".swift": {},
	".toml": {}, ".ts": {}, ".tsx": {}, ".txt": {}, ".xml": {}, ".yaml": {},
	".yml": {},
}

// ClassifyByExtension is the stricter policy used by the plain path
// list adapter: a terminal segment is a File only when its extension is
// on the allow-list. Explicit markers and the intermediate-segment rule
// behave as in Classify.
func ClassifyByExtension(segment string, final bool, marker Marker) Kind {
	switch marker {
	case MarkFolder:
		return Folder
	case MarkFile:
		return File
	}
	if !final || dotsOnly(segment) {
		return Folder
	}
	ext := strings.ToLower(path.Ext(segment))
	if _, ok := fileExtensions[ext]; ok {
		return File
	}
	return Folder
}

// ClassifyEmptyMapping is the documented policy for a nested-mapping
// value that is an empty mapping (rather than an explicit null): it is
// a File iff its key contains a dot, otherwise an empty Folder.
func ClassifyEmptyMapping(key string) Kind {
	if !dotsOnly(key) && strings.Contains(key, ".") {
		return File
	}
	return Folder
}

func dotsOnly(s string) bool {
	if s == "" {
		return true
	}
	return strings.Trim(s, ".") == ""
}
