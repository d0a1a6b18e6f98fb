// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"vcsup/internal/config"
)

var testTools = []config.ToolSpec{
	{ID: "git", DirectoryMarker: ".git", DisplayName: "Git", Commands: []string{"git pull"}},
	{ID: "hg", DirectoryMarker: ".hg", DisplayName: "Mercurial", Commands: []string{"hg pull"}},
}

// mktree creates the given directories under root, each path relative and
// slash-separated.
func mktree(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExpandBreadthFirst(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mktree(t, root,
		"proj1/.git",
		"proj2/sub/.hg",
	)

	got := Expand([]string{root}, testTools)

	want := []string{
		filepath.Join(root, "proj1"),
		filepath.Join(root, "proj2", "sub"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %#v, want %#v", got, want)
	}
}

func TestExpandRootIsRepo(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mktree(t, root, ".git", "nested/.git")

	got := Expand([]string{root}, testTools)

	if !reflect.DeepEqual(got, []string{root}) {
		t.Errorf("Expand() = %#v, want only the root", got)
	}
}

func TestExpandDoesNotDescendIntoRepos(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mktree(t, root,
		"proj/.git",
		"proj/vendor/lib/.git",
	)

	got := Expand([]string{root}, testTools)

	want := []string{filepath.Join(root, "proj")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %#v, want %#v", got, want)
	}
}

func TestExpandDeduplicatesOverlappingRoots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mktree(t, root, "proj/.git")

	got := Expand([]string{root, root}, testTools)

	if len(got) != 1 {
		t.Errorf("Expand() = %#v, want one entry", got)
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mktree(t, root, "a/.git", "b/.hg", "c/deep/deeper/.git")

	first := Expand([]string{root}, testTools)
	second := Expand([]string{root}, testTools)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expand() not stable: %#v then %#v", first, second)
	}
}

func TestMatchToolFirstWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mktree(t, root, ".git", ".hg")

	tool, ok := MatchTool(root, testTools)
	if !ok || tool.ID != "git" {
		t.Errorf("MatchTool() = %+v, %v; want git", tool, ok)
	}
}

func TestMatchToolIgnoresMarkerFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// A .git file (as in git worktrees) is not a marker directory.
	if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := MatchTool(root, testTools); ok {
		t.Error("MatchTool() claimed a directory whose marker is a file")
	}
}
