//go:build !minilog_noop && js && wasm

package out

// Out is the adapter compiled for this target
type Out = Console

var outPool = &consolePool
