package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RecentFiles is the append-only registry of opened and saved paths: one
// path per line, no deduplication.
type RecentFiles struct {
	Path string
}

// Append adds a path to the registry. Best effort: failures are ignored so
// a read-only home directory never breaks editing.
func (r *RecentFiles) Append(filename string) {
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, filename)
}

// Load returns the registry's entries, skipping blank lines.
func (r *RecentFiles) Load() []string {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil
	}
	var files []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}

// SelectRecent resolves a 1-based selection string against the registry
// entries. An unparsable or out-of-range choice is an error.
func SelectRecent(files []string, choice string) (string, error) {
	index, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return "", fmt.Errorf("invalid selection")
	}
	if index < 1 || index > len(files) {
		return "", fmt.Errorf("invalid selection")
	}
	return files[index-1], nil
}
