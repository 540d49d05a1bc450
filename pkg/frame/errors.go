package frame

import "errors"

var (
	ErrNilBuffer         = errors.New("frame: nil buffer")
	ErrNilPayload        = errors.New("frame: nil payload")
	ErrBufferTooSmall    = errors.New("frame: buffer too small")
	ErrPayloadTooLarge   = errors.New("frame: payload too large")
	ErrIncompleteFrame   = errors.New("frame: incomplete frame")
	ErrInvalidPreamble   = errors.New("frame: invalid preamble")
	ErrInvalidHeaderCRC  = errors.New("frame: invalid header crc")
	ErrInvalidPayloadCRC = errors.New("frame: invalid payload crc")
)
