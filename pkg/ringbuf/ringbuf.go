// Package ringbuf provides a fixed-capacity FIFO byte queue with
// wraparound indexing, used to stage streamed input for frame scanning.
package ringbuf

import "errors"

// Errors
var (
	ErrBufferTooSmall    = errors.New("ringbuf: capacity must be positive")
	ErrInsufficientSpace = errors.New("ringbuf: insufficient space")
)

// RingBuffer is a bounded byte queue. Appends go to the tail, consumes
// come from the head, and both wrap around the end of the backing
// storage. Free space is tracked explicitly so the full and empty states
// are unambiguous even though both have appendIdx == consumeIdx.
//
// A RingBuffer is not safe for concurrent use; callers that append and
// consume from different goroutines must provide their own locking.
type RingBuffer struct {
	buf        []byte
	appendIdx  int
	consumeIdx int
	free       int
}

// New creates a ring buffer with the given capacity. The backing storage
// is owned by the buffer and starts zeroed.
func New(capacity int) (*RingBuffer, error) {
	if capacity <= 0 {
		return nil, ErrBufferTooSmall
	}
	return &RingBuffer{
		buf:  make([]byte, capacity),
		free: capacity,
	}, nil
}

// Append copies p into the buffer at the tail. It returns
// ErrInsufficientSpace if p does not fit in the current free space;
// nothing is written in that case. A write that runs past the end of the
// storage is split into two contiguous copies.
func (r *RingBuffer) Append(p []byte) error {
	if len(p) > r.free {
		return ErrInsufficientSpace
	}
	n := copy(r.buf[r.appendIdx:], p)
	copy(r.buf, p[n:])
	r.appendIdx = (r.appendIdx + len(p)) % len(r.buf)
	r.free -= len(p)
	return nil
}

// Consume copies len(dst) bytes out of the buffer head, in the order
// they were appended, and releases their space. It returns
// ErrInsufficientSpace if fewer bytes are occupied than requested.
func (r *RingBuffer) Consume(dst []byte) error {
	if len(dst) > r.Len() {
		return ErrInsufficientSpace
	}
	n := copy(dst, r.buf[r.consumeIdx:])
	copy(dst[n:], r.buf)
	r.consumeIdx = (r.consumeIdx + len(dst)) % len(r.buf)
	r.free += len(dst)
	return nil
}

// Peek copies len(dst) bytes from the buffer head without consuming
// them. It returns ErrInsufficientSpace if fewer bytes are occupied than
// requested.
func (r *RingBuffer) Peek(dst []byte) error {
	if len(dst) > r.Len() {
		return ErrInsufficientSpace
	}
	n := copy(dst, r.buf[r.consumeIdx:])
	copy(dst[n:], r.buf)
	return nil
}

// Discard drops n bytes from the buffer head without copying them out.
// It returns ErrInsufficientSpace if fewer bytes are occupied than
// requested.
func (r *RingBuffer) Discard(n int) error {
	if n < 0 || n > r.Len() {
		return ErrInsufficientSpace
	}
	r.consumeIdx = (r.consumeIdx + n) % len(r.buf)
	r.free += n
	return nil
}

// Len returns the number of occupied bytes.
func (r *RingBuffer) Len() int {
	return len(r.buf) - r.free
}

// Free returns the number of bytes that can be appended without error.
// Free() + Len() == Cap() always holds.
func (r *RingBuffer) Free() int {
	return r.free
}

// Cap returns the fixed capacity of the buffer.
func (r *RingBuffer) Cap() int {
	return len(r.buf)
}
