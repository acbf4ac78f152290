//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package termsize

import "golang.org/x/sys/unix"

// Columns returns the column count of the terminal on fd. ok is false if fd is not a terminal.
func Columns(fd uintptr) (cols int, ok bool) {
	win, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || win.Col == 0 {
		return 0, false
	}

	return int(win.Col), true
}
