//go:build windows

package out

import "golang.org/x/sys/windows"

// FD is a C runtime style descriptor number: 0, 1 or 2
type FD int

func (fd FD) handle() (windows.Handle, error) {
	switch fd {
	case 0:
		return windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	case 1:
		return windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	case 2:
		return windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	}
	return windows.InvalidHandle, windows.ERROR_INVALID_HANDLE
}

// Write makes a single WriteFile call on the standard handle
func (fd FD) Write(p []byte) (int, error) {
	h, err := fd.handle()
	if err != nil {
		return 0, err
	}
	var done uint32
	err = windows.WriteFile(h, p, &done, nil)
	return int(done), err
}
