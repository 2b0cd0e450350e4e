//go:build unix

package out

import "golang.org/x/sys/unix"

// FD is a raw OS file descriptor
type FD int

// Write makes a single write(2) call
func (fd FD) Write(p []byte) (int, error) {
	return unix.Write(int(fd), p)
}
