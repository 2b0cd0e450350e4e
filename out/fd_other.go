//go:build !unix && !windows

package out

import (
	"os"
	"syscall"
)

// FD is a descriptor number mapped onto the process standard files
type FD int

// Write writes p to the standard file numbered fd
func (fd FD) Write(p []byte) (int, error) {
	switch fd {
	case 1:
		return os.Stdout.Write(p)
	case 2:
		return os.Stderr.Write(p)
	}
	return 0, syscall.EBADF
}
