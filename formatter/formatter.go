package formatter

import (
	"bytes"
	"io"
	"sync"
)

// Field is a key/value pair rendered after the message of a bridged line
type Field struct {
	Key   string
	Value interface{}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// WriteFields renders fields as " key=value" pairs and writes them to w
// in a single Write call. Nothing is written for an empty slice.
func WriteFields(w io.Writer, fields []Field) error {
	if len(fields) == 0 {
		return nil
	}
	buf := getBuffer()
	for _, f := range fields {
		buf.Write(AppendField(buf.AvailableBuffer(), f.Key, f.Value))
	}
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
