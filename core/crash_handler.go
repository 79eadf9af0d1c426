package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

var crashScreen atomic.Pointer[tcell.Screen]

// SetCrashScreen registers the screen restored by HandleCrash; nil clears it
func SetCrashScreen(s tcell.Screen) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash restores the terminal, prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := crashScreen.Swap(nil); s != nil {
		(*s).Fini()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBEATSYNTH CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
