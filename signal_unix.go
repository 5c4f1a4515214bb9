//go:build unix

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyToggle calls toggle for every SIGUSR1 until the returned stop
// function runs.
func notifyToggle(toggle func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)
	go func() {
		for range sigChan {
			toggle()
		}
	}()
	return func() {
		signal.Stop(sigChan)
		close(sigChan)
	}
}
