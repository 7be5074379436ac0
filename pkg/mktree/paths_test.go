package mktree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePathsBareLines(t *testing.T) {
	input := "root/src/index.ts\nroot/package.json\n"
	tree, err := DecodePaths(input)
	require.NoError(t, err)

	want := []string{
		"root folder",
		"root/src folder",
		"root/src/index.ts file",
		"root/package.json file",
	}
	assert.Equal(t, want, flattenKinds(tree))
}

func TestDecodePathsYAMLList(t *testing.T) {
	input := `
- root/a/main.go
- root/README.md
`
	tree, err := DecodePaths(input)
	require.NoError(t, err)

	want := []string{
		"root folder",
		"root/a folder",
		"root/a/main.go file",
		"root/README.md file",
	}
	assert.Equal(t, want, flattenKinds(tree))
}

func TestDecodePathsSingleFolderRootUnwrap(t *testing.T) {
	// One project directory comes back as the sole root, not wrapped.
	tree, err := DecodePaths("root/a/b.txt\n")
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, "root", tree[0].Name)
	assert.Equal(t, Folder, tree[0].Kind)
}

func TestDecodePathsExtensionAllowList(t *testing.T) {
	// "Makefile" and "v1.2" fail the allow-list and stay folders;
	// known extensions classify as files.
	input := "proj/Makefile\nproj/v1.2\nproj/main.go\n"
	tree, err := DecodePaths(input)
	require.NoError(t, err)

	want := []string{
		"proj folder",
		"proj/Makefile folder",
		"proj/v1.2 folder",
		"proj/main.go file",
	}
	assert.Equal(t, want, flattenKinds(tree))
}

func TestDecodePathsMultipleRootsKept(t *testing.T) {
	tree, err := DecodePaths("one/a.txt\ntwo/b.txt\n")
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "one", tree[0].Name)
	assert.Equal(t, "two", tree[1].Name)
}

func TestDecodePathsEmptyInput(t *testing.T) {
	tree, err := DecodePaths("\n  \n")
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestDecodePathsMatchesFlatMapping(t *testing.T) {
	// Flat mapping listing every prefix and a bare path list naming
	// only the leaf describe the same structure.
	flat, err := DecodeFlat("root: true\nroot/a: true\nroot/a/b.txt: true\n")
	require.NoError(t, err)
	paths, err := DecodePaths("root/a/b.txt\n")
	require.NoError(t, err)

	assert.Equal(t, flattenKinds(flat), flattenKinds(paths))
}
