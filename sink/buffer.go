package sink

// MaxCapacity is the largest logical capacity a Buffer supports
const MaxCapacity = 4096

// Emitter receives the buffered prefix on every flush. p is only valid
// for the duration of the call. eol reports that the flush was caused by a
// trailing line feed; the line feed itself is not part of p.
type Emitter interface {
	Emit(p []byte, eol bool)
}

// EmitterFunc adapts a function to the Emitter interface
type EmitterFunc func(p []byte, eol bool)

// Emit calls f(p, eol)
func (f EmitterFunc) Emit(p []byte, eol bool) {
	f(p, eol)
}

// Buffer accumulates text in a fixed inline array and hands it to an
// Emitter whenever it fills up or a fragment ends a line.
//
// The array holds one byte beyond the logical capacity. Emitters that need
// a terminator (a NUL for C string APIs, a line feed for raw streams) write
// it there with Terminated, so a record can be emitted in a single call
// without copying.
type Buffer struct {
	emitter Emitter
	cap     int
	n       int
	buf     [MaxCapacity + 1]byte
}

// New creates a Buffer with the given logical capacity
func New(capacity int, e Emitter) *Buffer {
	b := &Buffer{}
	b.Init(capacity, e)
	return b
}

// Init resets b to an empty buffer with the given capacity and emitter.
// Capacity is clamped to [1, MaxCapacity].
func (b *Buffer) Init(capacity int, e Emitter) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	b.emitter = e
	b.cap = capacity
	b.n = 0
}

// Len returns the number of buffered bytes
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the logical capacity
func (b *Buffer) Cap() int {
	return b.cap
}

// Available returns the free space before the next flush
func (b *Buffer) Available() int {
	return b.cap - b.n
}

// Bytes returns the buffered prefix. It aliases the internal array.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// Terminated writes c into the reserved slot after the buffered prefix
// and returns the prefix including it.
func (b *Buffer) Terminated(c byte) []byte {
	b.buf[b.n] = c
	return b.buf[:b.n+1]
}

// Flush emits the buffered prefix and empties the buffer
func (b *Buffer) Flush() {
	b.flush(false)
}

// Close flushes pending text, if any. It never fails.
func (b *Buffer) Close() error {
	if b.n > 0 {
		b.flush(false)
	}
	return nil
}

func (b *Buffer) flush(eol bool) {
	if b.emitter != nil {
		b.emitter.Emit(b.buf[:b.n], eol)
	}
	b.n = 0
}

// text is the set of fragment types a Buffer accepts without conversion
type text interface {
	~string | ~[]byte
}

// copyText copies as much of s as fits and returns the rest
func copyText[T text](b *Buffer, s T) T {
	written := copy(b.buf[b.n:b.cap], s)
	b.n += written
	return s[written:]
}

// writeText implements the overflow protocol for WriteText and Write.
//
// A full buffer is flushed before anything is copied. Fragments longer
// than the capacity are emitted in capacity-sized chunks; a remainder that
// does not fit the free space triggers one more flush. A trailing line
// feed is not stored: it causes an end-of-line flush after the copy.
func writeText[T text](b *Buffer, s T) {
	eol := len(s) > 0 && s[len(s)-1] == '\n'
	if eol {
		s = s[:len(s)-1]
	}

	if b.n == b.cap {
		b.flush(false)
	}

	for len(s) > b.cap {
		s = copyText(b, s)
		b.flush(false)
	}

	if s = copyText(b, s); len(s) > 0 {
		b.flush(false)
		copyText(b, s)
	}

	if eol {
		b.flush(true)
	}
}

// WriteText appends s, flushing as needed so that nothing is dropped
func (b *Buffer) WriteText(s string) {
	writeText(b, s)
}

// WriteString implements io.StringWriter. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	writeText(b, s)
	return len(s), nil
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	writeText(b, p)
	return len(p), nil
}
