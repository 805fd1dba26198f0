// Package core holds process-wide crash handling for the terminal game:
// every goroutine that can panic restores the terminal before the report is printed.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	mu      sync.Mutex
	cleanup func()

	// Swapped by tests
	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// SetCleanup registers the terminal restore run before a crash report; nil clears it
func SetCleanup(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	cleanup = fn
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(where string, r any) {
	if r == nil {
		return
	}

	mu.Lock()
	fn := cleanup
	cleanup = nil
	mu.Unlock()
	if fn != nil {
		fn()
	}

	// Raw mode may still be half-restored, so lines end in \r\n
	fmt.Fprintf(crashOut, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(where string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(where, r)
			}
		}()
		fn()
	}()
}
