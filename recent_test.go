package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRecentAppendAndLoad(t *testing.T) {
	r := &RecentFiles{Path: filepath.Join(t.TempDir(), "recent")}

	r.Append("a.txt")
	r.Append("b.txt")
	r.Append("a.txt") // no deduplication

	got := r.Load()
	want := []string{"a.txt", "b.txt", "a.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestRecentLoadMissing(t *testing.T) {
	r := &RecentFiles{Path: filepath.Join(t.TempDir(), "nope")}
	if got := r.Load(); got != nil {
		t.Errorf("missing registry should load empty, got %v", got)
	}
}

func TestRecentLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent")
	os.WriteFile(path, []byte("one.txt\n\n  \ntwo.txt\n"), 0644)

	r := &RecentFiles{Path: path}
	got := r.Load()
	if !reflect.DeepEqual(got, []string{"one.txt", "two.txt"}) {
		t.Errorf("Load = %v", got)
	}
}

func TestRecentAppendBestEffort(t *testing.T) {
	// An unwritable path must not panic or error out of Append.
	r := &RecentFiles{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "recent")}
	r.Append("a.txt")
}

func TestSelectRecent(t *testing.T) {
	files := []string{"a.txt", "b.txt", "c.txt"}

	got, err := SelectRecent(files, "2\n")
	if err != nil || got != "b.txt" {
		t.Errorf("SelectRecent(2) = (%q, %v)", got, err)
	}

	for _, choice := range []string{"0", "4", "x", "", "-1"} {
		if _, err := SelectRecent(files, choice); err == nil {
			t.Errorf("choice %q should be rejected", choice)
		}
	}
}
