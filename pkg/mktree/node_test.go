package mktree

import (
	"reflect"
	"testing"
)

func TestTreeSortCanonicalOrder(t *testing.T) {
	root := NewFolder("root")
	root.Children = []*Node{
		NewFile("zz.txt"),
		NewFolder("beta"),
		NewFile("aa.txt"),
		NewFolder("alpha"),
	}
	tree := Tree{root}
	tree.Sort()

	got := make([]string, 0, len(root.Children))
	for _, c := range root.Children {
		got = append(got, c.Name)
	}
	want := []string{"alpha", "beta", "aa.txt", "zz.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted children = %v, want %v", got, want)
	}
}

func TestTreeSortIsIdempotent(t *testing.T) {
	build := func() Tree {
		root := NewFolder("root")
		sub := NewFolder("sub")
		sub.Children = []*Node{NewFile("c.txt"), NewFolder("b"), NewFile("a.txt")}
		root.Children = []*Node{NewFile("x.txt"), sub, NewFolder("a")}
		return Tree{root}
	}

	once := build()
	once.Sort()
	twice := build()
	twice.Sort()
	twice.Sort()

	if !reflect.DeepEqual(once.Paths(), twice.Paths()) {
		t.Errorf("sorting twice changed order: %v vs %v", once.Paths(), twice.Paths())
	}
}

func TestTreeSortFoldersBeforeFilesCaseSensitive(t *testing.T) {
	root := NewFolder("root")
	root.Children = []*Node{
		NewFile("A.txt"),
		NewFile("a.txt"),
		NewFolder("Zdir"),
		NewFolder("adir"),
	}
	tree := Tree{root}
	tree.Sort()

	var got []string
	for _, c := range root.Children {
		got = append(got, c.Name)
	}
	// Case-sensitive lexicographic: uppercase sorts before lowercase.
	want := []string{"Zdir", "adir", "A.txt", "a.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted children = %v, want %v", got, want)
	}
}

func TestTreeWalkDepthFirst(t *testing.T) {
	src := NewFolder("src")
	src.Children = []*Node{NewFile("index.ts")}
	root := NewFolder("root")
	root.Children = []*Node{src, NewFile("package.json")}
	tree := Tree{root}

	want := []string{"root", "root/src", "root/src/index.ts", "root/package.json"}
	if got := tree.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestTreeWalkStopsEarly(t *testing.T) {
	root := NewFolder("root")
	root.Children = []*Node{NewFile("a.txt"), NewFile("b.txt")}
	tree := Tree{root}

	var visited []string
	tree.Walk(func(path string, _ *Node) bool {
		visited = append(visited, path)
		return path != "root/a.txt"
	})
	want := []string{"root", "root/a.txt"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestNodeChildLookupByNameAndKind(t *testing.T) {
	root := NewFolder("root")
	root.Children = []*Node{NewFolder("dup"), NewFile("dup")}

	if n := root.Child("dup", Folder); n == nil || n.Kind != Folder {
		t.Errorf("Child(dup, Folder) = %v, want folder node", n)
	}
	if n := root.Child("dup", File); n == nil || n.Kind != File {
		t.Errorf("Child(dup, File) = %v, want file node", n)
	}
	if n := root.Child("missing", File); n != nil {
		t.Errorf("Child(missing, File) = %v, want nil", n)
	}
}
