// Package octet provides the forward-only byte source the decoder reads
// instructions from.
package octet

import (
	"bufio"
	"io"
)

// Reader hands out one octet per call and remembers the bytes read since the
// last instruction boundary.
type Reader struct {
	r       *bufio.Reader
	offset  int
	start   int
	pending []byte
}

func New(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadByte returns the next octet, or io.EOF when the input is exhausted.
func (o *Reader) ReadByte() (byte, error) {
	b, err := o.r.ReadByte()
	if err != nil {
		return 0, err
	}
	o.offset++
	o.pending = append(o.pending, b)
	return b, nil
}

// Offset is the number of octets read so far.
func (o *Reader) Offset() int {
	return o.offset
}

// Consume closes the current instruction boundary. It returns where the
// pending bytes started and a copy of them.
func (o *Reader) Consume() (offset int, raw []byte) {
	offset = o.start
	raw = append([]byte(nil), o.pending...)
	o.start = o.offset
	o.pending = o.pending[:0]
	return offset, raw
}
