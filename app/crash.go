package app

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
)

// exit is replaced in tests
var exit = os.Exit

// HandleCrash restores the terminal, prints the panic with its stack trace
// and exits; a nil r is ignored
func HandleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}
	// Restore terminal to sane state before anything is printed
	if screen != nil {
		screen.Fini()
	}
	os.Stdout.Sync()

	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal raw
func Go(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(screen, r)
			}
		}()
		fn()
	}()
}
