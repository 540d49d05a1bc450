package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ssargent/bifrost/pkg/crc16"
)

// encodeFrame builds a single frame with the given counter, panicking on
// error. Test-only convenience.
func encodeFrame(counter uint16, payload []byte) []byte {
	b, err := NewBuilder(make([]byte, FrameSize(len(payload))))
	if err != nil {
		panic(err)
	}
	b.SetCounter(counter)
	out, err := b.Build(payload)
	if err != nil {
		panic(err)
	}
	return out
}

func TestParse_RoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		payload []byte
	}{
		{name: "empty payload", payload: []byte{}},
		{name: "single byte", payload: []byte{0x42}},
		{name: "text payload", payload: []byte("hello, frame")},
		{name: "binary payload", payload: []byte{0x00, 0xFF, 0x7F, 0x80, 0xAA, 0x55}},
		{name: "large payload", payload: bytes.Repeat([]byte{0xC3}, 4096)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := encodeFrame(7, tc.payload)

			f, consumed, err := Parse(encoded)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if consumed != FrameSize(len(tc.payload)) {
				t.Errorf("consumed = %d, want %d", consumed, FrameSize(len(tc.payload)))
			}
			if f.Header.Counter != 7 {
				t.Errorf("counter = %d, want 7", f.Header.Counter)
			}
			if int(f.Header.PayloadSize) != len(tc.payload) {
				t.Errorf("payload size = %d, want %d", f.Header.PayloadSize, len(tc.payload))
			}
			if !bytes.Equal(f.Payload, tc.payload) {
				t.Errorf("payload mismatch: got %v, want %v", f.Payload, tc.payload)
			}
			if f.PayloadCRC != crc16.Checksum(tc.payload) {
				t.Errorf("payload crc = 0x%04X, want 0x%04X", f.PayloadCRC, crc16.Checksum(tc.payload))
			}
		})
	}
}

func TestParse_PayloadAliasesWindow(t *testing.T) {
	encoded := encodeFrame(0, []byte("borrowed"))

	f, _, err := Parse(encoded)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if &f.Payload[0] != &encoded[HeaderSize] {
		t.Error("payload does not alias the parsed window; expected zero-copy")
	}
}

func TestParse_TrailingBytesIgnored(t *testing.T) {
	payload := []byte("first")
	encoded := encodeFrame(3, payload)
	window := append(append([]byte(nil), encoded...), 0xDE, 0xAD, 0xBE, 0xEF)

	f, consumed, err := Parse(window)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed = %d, want %d", consumed, len(encoded))
	}
	if !bytes.Equal(f.Payload, payload) {
		t.Errorf("payload = %q, want %q", f.Payload, payload)
	}
}

func TestParse_IncompleteWindow(t *testing.T) {
	encoded := encodeFrame(1, []byte("truncate me"))

	for n := 0; n < len(encoded); n++ {
		_, _, err := Parse(encoded[:n])
		if !errors.Is(err, ErrIncompleteFrame) {
			t.Fatalf("Parse of %d/%d bytes error = %v, want ErrIncompleteFrame", n, len(encoded), err)
		}
	}
}

func TestParse_InvalidPreamble(t *testing.T) {
	encoded := encodeFrame(1, []byte("payload"))

	for _, corrupt := range []int{0, 1} {
		window := append([]byte(nil), encoded...)
		window[corrupt] ^= 0xFF
		if _, _, err := Parse(window); !errors.Is(err, ErrInvalidPreamble) {
			t.Errorf("corrupted preamble byte %d: error = %v, want ErrInvalidPreamble", corrupt, err)
		}
	}
}

func TestParse_InvalidHeaderCRC(t *testing.T) {
	encoded := encodeFrame(1, []byte("payload"))

	// Corrupting any of the counter, size or CRC bytes must fail the
	// header check before the payload is touched.
	for corrupt := 2; corrupt < HeaderSize; corrupt++ {
		window := append([]byte(nil), encoded...)
		window[corrupt] ^= 0xFF
		if _, _, err := Parse(window); !errors.Is(err, ErrInvalidHeaderCRC) {
			t.Errorf("corrupted header byte %d: error = %v, want ErrInvalidHeaderCRC", corrupt, err)
		}
	}
}

func TestParse_InvalidPayloadCRC(t *testing.T) {
	payload := []byte("integrity matters")
	encoded := encodeFrame(1, payload)

	for i := 0; i < len(payload)+ChecksumSize; i++ {
		window := append([]byte(nil), encoded...)
		window[HeaderSize+i] ^= 0xFF
		if _, _, err := Parse(window); !errors.Is(err, ErrInvalidPayloadCRC) {
			t.Errorf("corrupted byte %d past header: error = %v, want ErrInvalidPayloadCRC", i, err)
		}
	}
}

func TestParse_DeclaredSizeTooLarge(t *testing.T) {
	// Hand-build a header that declares an illegal payload size but
	// carries a valid header CRC.
	window := make([]byte, MinFrameSize)
	window[0] = PreambleByte0
	window[1] = PreambleByte1
	binary.LittleEndian.PutUint16(window[2:4], 0)
	binary.LittleEndian.PutUint16(window[4:6], uint16(MaxPayloadSize+1))
	binary.LittleEndian.PutUint16(window[6:8], crc16.Checksum(window[:6]))

	if _, _, err := Parse(window); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Parse error = %v, want ErrPayloadTooLarge", err)
	}
}

func TestParse_ValidHeaderMissingPayload(t *testing.T) {
	encoded := encodeFrame(9, bytes.Repeat([]byte{0x11}, 100))

	// A window holding the full valid header but only part of the
	// payload is incomplete, not corrupt.
	_, _, err := Parse(encoded[:HeaderSize+50])
	if !errors.Is(err, ErrIncompleteFrame) {
		t.Errorf("Parse error = %v, want ErrIncompleteFrame", err)
	}
}

func TestFrameSize(t *testing.T) {
	if got := FrameSize(0); got != MinFrameSize {
		t.Errorf("FrameSize(0) = %d, want %d", got, MinFrameSize)
	}
	if got := FrameSize(100); got != 110 {
		t.Errorf("FrameSize(100) = %d, want 110", got)
	}
	if got := FrameSize(MaxPayloadSize); got != 65535 {
		t.Errorf("FrameSize(MaxPayloadSize) = %d, want 65535", got)
	}
}
