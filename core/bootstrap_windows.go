//go:build windows

package core

import "golang.org/x/sys/windows"

// cpUTF8 is the Windows code page identifier for UTF-8
const cpUTF8 = 65001

// bootstrap switches the console output code page to UTF-8 so that
// non-ASCII log text renders correctly. Failure leaves the console as is.
func bootstrap() {
	_ = windows.SetConsoleOutputCP(cpUTF8)
}
