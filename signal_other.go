//go:build !unix

package main

func notifyToggle(func()) (stop func()) {
	return func() {}
}
