package frame

// Wire format constants. All multi-byte fields are little-endian.
const (
	PreambleByte0 byte = 0xAA
	PreambleByte1 byte = 0x55

	PreambleSize = 2
	HeaderSize   = 8 // preamble(2) + counter(2) + payload size(2) + header CRC(2)
	ChecksumSize = 2

	// MinFrameSize is the wire size of a frame with an empty payload.
	MinFrameSize = HeaderSize + ChecksumSize

	// MaxPayloadSize keeps the total frame size within 16 bits.
	MaxPayloadSize = 65535 - MinFrameSize
)

// Header holds the decoded fixed header fields.
type Header struct {
	Counter     uint16 `json:"counter"`
	PayloadSize uint16 `json:"payload_size"`
	HeaderCRC   uint16 `json:"header_crc"`
}

// Frame is one decoded wire frame.
//
// Payload produced by Parse, Scan or a Scanner aliases the scanned
// buffer and is only valid while that buffer is unchanged; callers that
// keep payload bytes past the scan must copy them. Frames produced by
// DrainRing carry their own copy because the ring storage is overwritten
// by later appends.
type Frame struct {
	Header     Header
	Payload    []byte
	PayloadCRC uint16
}

// FrameSize returns the total wire size of a frame carrying a payload of
// payloadSize bytes.
func FrameSize(payloadSize int) int {
	return HeaderSize + payloadSize + ChecksumSize
}
