//go:build minilog_warn_off || minilog_all_off

package logger

import "github.com/philipp01105/minilog/core"

func init() {
	stripped[core.WarnLevel] = true
}
