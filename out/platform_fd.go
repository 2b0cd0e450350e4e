//go:build !minilog_noop && (unix || windows || wasip1) && !(android && cgo)

package out

// Out is the adapter compiled for this target
type Out = FdWriter

var outPool = &fdPool
