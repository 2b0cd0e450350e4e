// Package sink implements the fixed-capacity text buffer behind every
// minilog call.
//
// A Buffer lives for one log call. Text fragments are copied into an
// inline array; the array is handed to an Emitter when it fills up, when a
// fragment ends with a line feed, or when Flush is called. Fragments of
// any length are accepted: oversized input is emitted in capacity-sized
// chunks, in order, with nothing dropped or repeated.
//
// Line feeds that end a fragment are never stored. The flush they cause
// reports eol=true, and the Emitter decides how a record is terminated on
// its platform. Emitters that need a trailing byte use the reserved slot
// returned by Terminated instead of copying.
package sink
