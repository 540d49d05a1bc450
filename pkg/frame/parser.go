package frame

import (
	"encoding/binary"

	"github.com/ssargent/bifrost/pkg/crc16"
)

// Parse validates and unpacks one frame from the start of window. On
// success it returns the frame and the exact number of bytes consumed,
// which equals FrameSize of the payload, so the caller can advance its
// read position precisely.
//
// The returned payload is a zero-copy subslice of window.
//
// ErrIncompleteFrame means window may still extend into a valid frame;
// the caller should retry at the same offset once more data is
// available. Every other error is a definitive rejection of this offset.
func Parse(window []byte) (*Frame, int, error) {
	if len(window) < MinFrameSize {
		return nil, 0, ErrIncompleteFrame
	}
	if window[0] != PreambleByte0 || window[1] != PreambleByte1 {
		return nil, 0, ErrInvalidPreamble
	}

	h := Header{
		Counter:     binary.LittleEndian.Uint16(window[2:4]),
		PayloadSize: binary.LittleEndian.Uint16(window[4:6]),
		HeaderCRC:   binary.LittleEndian.Uint16(window[6:8]),
	}
	if crc16.Checksum(window[:6]) != h.HeaderCRC {
		return nil, 0, ErrInvalidHeaderCRC
	}
	if int(h.PayloadSize) > MaxPayloadSize {
		return nil, 0, ErrPayloadTooLarge
	}

	total := FrameSize(int(h.PayloadSize))
	if len(window) < total {
		return nil, 0, ErrIncompleteFrame
	}

	payload := window[HeaderSize : HeaderSize+int(h.PayloadSize)]
	payloadCRC := binary.LittleEndian.Uint16(window[total-ChecksumSize:])
	if crc16.Checksum(payload) != payloadCRC {
		return nil, 0, ErrInvalidPayloadCRC
	}

	return &Frame{Header: h, Payload: payload, PayloadCRC: payloadCRC}, total, nil
}
