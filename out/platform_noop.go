//go:build minilog_noop || !(unix || windows || wasip1 || (js && wasm))

package out

// Out is the adapter compiled for this target
type Out = Noop

var outPool = &noopPool
