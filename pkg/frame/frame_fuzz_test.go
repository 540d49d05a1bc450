//go:build fuzz
// +build fuzz

package frame

import (
	"bytes"
	"testing"
)

// FuzzBuildParse_RoundTrip checks that any payload survives an
// encode/decode round trip byte-for-byte.
func FuzzBuildParse_RoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("payload"))
	f.Add([]byte{0xAA, 0x55, 0xAA, 0x55})
	f.Add(bytes.Repeat([]byte{0x00}, 1024))

	f.Fuzz(func(t *testing.T, payload []byte) {
		if len(payload) > MaxPayloadSize {
			t.Skip("payload exceeds wire format maximum")
		}

		b, err := NewBuilder(make([]byte, FrameSize(len(payload))))
		if err != nil {
			t.Fatalf("NewBuilder failed: %v", err)
		}
		encoded, err := b.Build(payload)
		if err != nil {
			t.Fatalf("Build failed for %d payload bytes: %v", len(payload), err)
		}

		decoded, consumed, err := Parse(encoded)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if consumed != len(encoded) {
			t.Errorf("consumed = %d, want %d", consumed, len(encoded))
		}
		if !bytes.Equal(decoded.Payload, payload) {
			t.Errorf("payload mismatch after round trip")
		}
	})
}

// FuzzParse_ArbitraryInput checks that the parser never panics and never
// claims to consume more bytes than it was given.
func FuzzParse_ArbitraryInput(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{PreambleByte0, PreambleByte1})
	f.Add(bytes.Repeat([]byte{PreambleByte0, PreambleByte1}, 16))

	f.Fuzz(func(t *testing.T, window []byte) {
		decoded, consumed, err := Parse(window)
		if err != nil {
			return
		}
		if consumed > len(window) {
			t.Errorf("consumed %d of %d bytes", consumed, len(window))
		}
		if int(decoded.Header.PayloadSize) != len(decoded.Payload) {
			t.Errorf("declared size %d != payload length %d", decoded.Header.PayloadSize, len(decoded.Payload))
		}
	})
}
