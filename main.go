package main

import (
	"bufio"
	"fmt"
	"os"
)

const Version = "1.0.0"

func main() {
	cfg, err := LoadConfig(DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "stet: bad config, using defaults: %v\n", err)
	}

	var filename string
	switch {
	case len(os.Args) == 2 && os.Args[1] == "--recent":
		filename, err = pickRecent(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stet: %v\n", err)
			os.Exit(1)
		}
	case len(os.Args) >= 2:
		filename = os.Args[1]
	default:
		fmt.Println("Starting a new buffer (no filename). You can save it later with Ctrl-O.")
	}

	app := NewApp(filename, cfg)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "stet: %v\n", err)
		os.Exit(1)
	}
}

// pickRecent lists the recent-files registry and reads a 1-based selection
// from stdin. Runs before the terminal enters raw mode.
func pickRecent(cfg Config) (string, error) {
	recent := &RecentFiles{Path: cfg.RecentFiles}
	files := recent.Load()
	if len(files) == 0 {
		return "", fmt.Errorf("no recent files found")
	}
	fmt.Println("Recent files:")
	for i, file := range files {
		fmt.Printf("%d: %s\n", i+1, file)
	}
	fmt.Print("Open which file (number)? ")
	reader := bufio.NewReader(os.Stdin)
	choice, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("invalid selection")
	}
	return SelectRecent(files, choice)
}
