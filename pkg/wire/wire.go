// Package wire implements the flat binary buffer primitives shared by the
// circuit and proof codecs: little-endian unsigned integers, length-prefixed
// strings and canonical Goldilocks field elements.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// ErrMalformedPayload reports bytes that are present but structurally
// inconsistent with the expected layout.
var ErrMalformedPayload = errors.New("malformed payload")

// goldilocks modulus 2^64 - 2^32 + 1; anything >= this is non-canonical
var qUint64 = goldilocks.Modulus().Uint64()

// A Writer accumulates a wire-format byte buffer. Writes never fail; the
// buffer is handed out once via Bytes.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteString writes a uint64 length prefix followed by the raw UTF-8 bytes.
func (w *Writer) WriteString(s string) {
	w.WriteUint64(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteElement writes the canonical 8-byte big-endian encoding of e.
func (w *Writer) WriteElement(e goldilocks.Element) {
	b := e.Bytes()
	w.buf = append(w.buf, b[:]...)
}

// WriteElements writes a uint64 count followed by each element.
func (w *Writer) WriteElements(es []goldilocks.Element) {
	w.WriteUint64(uint64(len(es)))
	for _, e := range es {
		w.WriteElement(e)
	}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// A Reader consumes a wire-format byte buffer. Every read checks the
// remaining length and fails with ErrMalformedPayload on a short buffer.
type Reader struct {
	data []byte
	off  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n int) ([]byte, error) {
	if len(r.data)-r.off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrMalformedPayload, n, r.off, len(r.data)-r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return "", err
	}
	if n > uint64(r.Remaining()) {
		return "", fmt.Errorf("%w: string length %d exceeds remaining %d bytes",
			ErrMalformedPayload, n, r.Remaining())
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadElement reads an 8-byte big-endian element and rejects non-canonical
// values (>= the Goldilocks modulus) instead of reducing them.
func (r *Reader) ReadElement() (goldilocks.Element, error) {
	var e goldilocks.Element
	b, err := r.take(8)
	if err != nil {
		return e, err
	}
	v := binary.BigEndian.Uint64(b)
	if v >= qUint64 {
		return e, fmt.Errorf("%w: non-canonical field element %#x", ErrMalformedPayload, v)
	}
	e.SetUint64(v)
	return e, nil
}

// ReadElements reads a uint64 count followed by count elements. The count is
// validated against the remaining buffer before allocating.
func (r *Reader) ReadElements() ([]goldilocks.Element, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining())/8 {
		return nil, fmt.Errorf("%w: element count %d exceeds remaining %d bytes",
			ErrMalformedPayload, n, r.Remaining())
	}
	es := make([]goldilocks.Element, n)
	for i := range es {
		if es[i], err = r.ReadElement(); err != nil {
			return nil, err
		}
	}
	return es, nil
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}
