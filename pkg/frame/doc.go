// Package frame implements the Bifrost compact framing codec: a
// self-delimiting, integrity-checked wire format for packing arbitrary
// payloads into byte streams exchanged over serial links and other
// lossy, unstructured channels.
//
// # Wire Format
//
// Frames are laid out as follows, with all multi-byte fields
// little-endian:
//
//	[preamble(2)][counter(2)][payload size(2)][header CRC(2)][payload][payload CRC(2)]
//
// Fields:
//   - preamble: fixed marker 0xAA 0x55 identifying a candidate frame start
//   - counter: 16-bit sequence number assigned by the Builder, wraps at 65536
//   - payload size: 16-bit payload length, at most MaxPayloadSize
//   - header CRC: CRC-16/CCITT-FALSE over the preceding 6 header bytes
//   - payload: payload size bytes, values unrestricted
//   - payload CRC: CRC-16/CCITT-FALSE over the payload bytes only
//
// The total wire size is payload size + 10 bytes; the smallest frame is
// 10 bytes (empty payload). A frame is valid iff both checksums match
// recomputation.
//
// # Encoding and Decoding
//
//	buf := make([]byte, frame.FrameSize(len(payload)))
//	b, err := frame.NewBuilder(buf)
//	if err != nil {
//		return err
//	}
//	encoded, err := b.Build(payload)
//	if err != nil {
//		return err
//	}
//
//	f, consumed, err := frame.Parse(encoded)
//
// # Scanning Streams
//
// Scan and Scanner recover individual frames from a continuous, possibly
// corrupted byte stream. After any decode failure that is not
// ErrIncompleteFrame the cursor advances a single byte and the preamble
// search resumes, so one corrupted frame cannot prevent discovery of
// later valid frames. ErrIncompleteFrame is terminal for a scan: the
// trailing bytes may still grow into a valid frame once more data
// arrives, and skipping past them would discard it.
//
// DrainRing applies the same policy to data staged in a
// ringbuf.RingBuffer, consuming what it disposes of and leaving partial
// trailing candidates staged.
//
// # Payload Lifetimes
//
// Parse, Scan and Scanner return payloads that alias the scanned buffer;
// they are valid only until that buffer is mutated. DrainRing returns
// owned copies because ring storage is recycled by later appends.
//
// # Thread Safety
//
// Parse, Scan and FrameSize are pure. Builder, Scanner and
// ringbuf.RingBuffer are single-owner types with no internal locking.
package frame
