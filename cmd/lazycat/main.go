package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/ppdx999/lazycat/internal/app"
)

func printHelp() {
	fmt.Print(`lazycat - Terminal file browser with live preview

USAGE:
    lazycat [OPTIONS]

Opens in the current working directory.

OPTIONS:
    -h, --help    Show this help message and exit

KEYS:
    q, Esc        Quit
    j/k, ↑/↓      Move selection
    l, →, Enter   Enter directory
    h, ←          Go to parent directory
    r             Refresh listing
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-h" || arg == "--help" {
			printHelp()
			os.Exit(0)
		}
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
