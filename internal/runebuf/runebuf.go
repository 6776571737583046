/*
Package runebuf provides pooled scratch buffers for assembling sequences of
runes.

Most operations on text values produce a new sequence of code-points by
copying through parts of the input, dropping or replacing others. Buffers for
this are short-lived objects. To avoid multiple allocation of small objects we
pool them.

Usage:

	buf := runebuf.Borrow()
	defer buf.Release()
	buf.WriteRunes(…)
	result := buf.Runes()   // a copy, safe to keep after Release

*/
package runebuf

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.runebuf'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.runebuf")
}

// Buffers larger than this will not go back to the pool, but be left for the
// garbage collector.
const maxPooledCap = 4096

// Buffer is a growable sequence of runes.
type Buffer struct {
	runes []rune
}

type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Buffer{runes: make([]rune, 0, 64)}, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// Borrow returns an empty buffer from the pool. Clients should call Release()
// after use.
func Borrow() *Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow rune buffer: %v", err)
		return &Buffer{}
	}
	buf := o.(*Buffer)
	buf.runes = buf.runes[:0]
	return buf
}

// Release clears the buffer and puts it back into the pool.
// The buffer must not be used afterwards.
func (buf *Buffer) Release() {
	if buf == nil {
		return
	}
	if cap(buf.runes) > maxPooledCap {
		buf.runes = nil
		_ = globalBufferPool.opool.InvalidateObject(globalBufferPool.ctx, buf)
		return
	}
	buf.runes = buf.runes[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}

// Grow makes sure there is room for at least n more runes.
func (buf *Buffer) Grow(n int) {
	if cap(buf.runes)-len(buf.runes) < n {
		r := make([]rune, len(buf.runes), 2*cap(buf.runes)+n)
		copy(r, buf.runes)
		buf.runes = r
	}
}

// WriteRune appends a single rune.
func (buf *Buffer) WriteRune(r rune) {
	buf.runes = append(buf.runes, r)
}

// WriteRunes appends a sequence of runes.
func (buf *Buffer) WriteRunes(r []rune) {
	buf.runes = append(buf.runes, r...)
}

// WriteString appends the code-points of a Go string.
func (buf *Buffer) WriteString(s string) {
	for _, r := range s {
		buf.runes = append(buf.runes, r)
	}
}

// Len is the number of runes written so far.
func (buf *Buffer) Len() int {
	return len(buf.runes)
}

// Runes returns a copy of the buffer's content.
func (buf *Buffer) Runes() []rune {
	r := make([]rune, len(buf.runes))
	copy(r, buf.runes)
	return r
}

// String returns the buffer's content as a Go string.
func (buf *Buffer) String() string {
	return string(buf.runes)
}

// Simple stringer for debugging purposes.
func (buf *Buffer) GoString() string {
	if buf == nil {
		return "[nil buffer]"
	}
	return fmt.Sprintf("[runebuf len=%d cap=%d]", len(buf.runes), cap(buf.runes))
}
