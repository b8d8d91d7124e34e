package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores an output device (terminal screen) before crash output
type Finalizer interface {
	Fini()
}

var crashFinalizer atomic.Pointer[Finalizer]

// SetCrashFinalizer registers the device restored by HandleCrash, nil clears it
func SetCrashFinalizer(f Finalizer) {
	if f == nil {
		crashFinalizer.Store(nil)
		return
	}
	crashFinalizer.Store(&f)
}

// HandleCrash is the unified panic handler that restores the screen and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashFinalizer.Load(); f != nil {
		(*f).Fini()
	}

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCHAINBURST CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
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
