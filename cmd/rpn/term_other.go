//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package main

func isTerminal(fd int) bool {
	return false
}
