// Package stream writes generator output: text pairs of value and
// recovered position, or raw little-endian binary.
package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Nexter yields successive values of a permutation.
type Nexter interface {
	Next() uint64
	Bits() uint
}

// Undoer maps a value back to its position.
type Undoer interface {
	Undo(x uint64) uint64
}

// Encoder writes values to an underlying writer.
type Encoder interface {
	Encode(v uint64) error
	// Flush writes any buffered data.
	Flush() error
}

// ByteWidth returns the number of bytes a value of the given bit width takes
// in binary output.
func ByteWidth(bits uint) int {
	return int(bits+7) / 8
}

type hexEncoder struct {
	w    *bufio.Writer
	u    Undoer
	opts *Options
}

// NewHexEncoder returns an Encoder writing one line per value: the value and
// the position u reports for it, both as 16 hex digits, two spaces apart.
func NewHexEncoder(w io.Writer, u Undoer, opts ...Option) Encoder {
	opt := newOptions(opts...)
	return &hexEncoder{
		w:    bufio.NewWriterSize(w, opt.bufferSize),
		u:    u,
		opts: opt,
	}
}

func (e *hexEncoder) Encode(v uint64) error {
	if _, err := fmt.Fprintf(e.w, "%016x  %016x\n", v, e.u.Undo(v)); err != nil {
		return err
	}
	e.opts.count()
	return nil
}

func (e *hexEncoder) Flush() error {
	return e.w.Flush()
}

type binaryEncoder struct {
	w     *bufio.Writer
	width int
	opts  *Options
	buf   [8]byte
}

// NewBinaryEncoder returns an Encoder writing each value little-endian,
// truncated to ByteWidth(bits) bytes.
func NewBinaryEncoder(w io.Writer, bits uint, opts ...Option) Encoder {
	opt := newOptions(opts...)
	return &binaryEncoder{
		w:     bufio.NewWriterSize(w, opt.bufferSize),
		width: ByteWidth(bits),
		opts:  opt,
	}
}

func (e *binaryEncoder) Encode(v uint64) error {
	binary.LittleEndian.PutUint64(e.buf[:], v)
	if _, err := e.w.Write(e.buf[:e.width]); err != nil {
		return err
	}
	e.opts.count()
	return nil
}

func (e *binaryEncoder) Flush() error {
	return e.w.Flush()
}

// Copy encodes n successive values of g, or values without end when n is 0,
// and flushes the encoder. It stops at the first write error.
func Copy(enc Encoder, g Nexter, n uint64) error {
	for i := uint64(0); n == 0 || i < n; i++ {
		if err := enc.Encode(g.Next()); err != nil {
			return err
		}
	}
	return enc.Flush()
}

type reader struct {
	g       Nexter
	width   int
	pending []byte
	buf     [8]byte
}

// NewReader returns an endless io.Reader over the binary encoding of g's
// values. Wrap it in io.LimitReader to bound it.
func NewReader(g Nexter) io.Reader {
	return &reader{g: g, width: ByteWidth(g.Bits())}
}

func (r *reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.pending) == 0 {
			binary.LittleEndian.PutUint64(r.buf[:], r.g.Next())
			r.pending = r.buf[:r.width]
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	return n, nil
}
