//go:build minilog_debug_off || minilog_all_off

package logger

import "github.com/philipp01105/minilog/core"

func init() {
	stripped[core.DebugLevel] = true
}
