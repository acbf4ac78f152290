// Package termsize reports the width of the terminal attached to a file descriptor.
package termsize

import "io"

// FD returns the file descriptor behind w, if it has one (an *os.File does).
func FD(w io.Writer) (uintptr, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}

	return f.Fd(), true
}
