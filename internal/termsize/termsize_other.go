//go:build !(linux || darwin || freebsd || openbsd || netbsd || dragonfly)

package termsize

// Columns is not implemented on this platform and always reports ok == false.
func Columns(fd uintptr) (cols int, ok bool) {
	return 0, false
}
