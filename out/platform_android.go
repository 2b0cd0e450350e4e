//go:build !minilog_noop && android && cgo

package out

// Out is the adapter compiled for this target
type Out = AndroidLog

var outPool = &androidPool
