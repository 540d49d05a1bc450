package frame

import (
	"encoding/binary"

	"github.com/ssargent/bifrost/pkg/crc16"
)

// Builder packs payloads into frames written to a caller-owned
// destination buffer. It assigns consecutive frame counters across calls,
// wrapping modulo 65536.
//
// A Builder is not safe for concurrent use; concurrent Build calls on
// the same instance corrupt the counter sequence.
type Builder struct {
	buf     []byte
	counter uint16
}

// NewBuilder creates a builder writing into buf. The buffer must be able
// to hold at least a minimum-size frame.
func NewBuilder(buf []byte) (*Builder, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if len(buf) < MinFrameSize {
		return nil, ErrBufferTooSmall
	}
	return &Builder{buf: buf}, nil
}

// Build encodes payload into the destination buffer and returns the
// encoded frame as a subslice of it. The frame carries the builder's
// current counter, which is incremented on success. An empty non-nil
// payload is legal and produces a minimum-size frame.
func (b *Builder) Build(payload []byte) ([]byte, error) {
	if b.buf == nil {
		return nil, ErrNilBuffer
	}
	if payload == nil {
		return nil, ErrNilPayload
	}
	if len(payload) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}
	total := FrameSize(len(payload))
	if total > len(b.buf) {
		return nil, ErrBufferTooSmall
	}

	out := b.buf[:total]
	out[0] = PreambleByte0
	out[1] = PreambleByte1
	binary.LittleEndian.PutUint16(out[2:4], b.counter)
	binary.LittleEndian.PutUint16(out[4:6], uint16(len(payload)))
	binary.LittleEndian.PutUint16(out[6:8], crc16.Checksum(out[:6]))

	copy(out[HeaderSize:], payload)
	payloadCRC := crc16.Checksum(out[HeaderSize : HeaderSize+len(payload)])
	binary.LittleEndian.PutUint16(out[total-ChecksumSize:], payloadCRC)

	b.counter++
	return out, nil
}

// SetCounter presets the next frame counter, e.g. to resume an
// interrupted sequence.
func (b *Builder) SetCounter(c uint16) {
	b.counter = c
}

// Counter returns the counter the next Build will assign.
func (b *Builder) Counter() uint16 {
	return b.counter
}
