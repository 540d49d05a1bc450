package frame

import (
	"bytes"
	"errors"

	"github.com/ssargent/bifrost/pkg/ringbuf"
)

// DrainRing decodes every complete frame currently staged in rb,
// invoking fn once per frame in FIFO order, and returns the number of
// frames decoded. It returns 0 without doing any work when rb or fn is
// nil.
//
// Decoded bytes and bytes skipped during resynchronization are consumed
// from the ring; a trailing partial frame candidate is left staged so a
// later Append can complete it. Payloads handed to fn are owned copies:
// the ring storage is overwritten by subsequent appends, so borrowing
// into it would dangle.
func DrainRing(rb *ringbuf.RingBuffer, fn func(*Frame)) int {
	if rb == nil || fn == nil {
		return 0
	}

	staged := make([]byte, rb.Len())
	if err := rb.Peek(staged); err != nil {
		return 0
	}

	decoded := 0
	pos := 0
	discard := 0

scan:
	for pos < len(staged) {
		idx := bytes.Index(staged[pos:], preamble)
		if idx < 0 {
			// No full preamble ahead. Everything is disposable
			// except a trailing first preamble byte, which may
			// pair with the next append.
			discard = len(staged)
			if staged[len(staged)-1] == PreambleByte0 {
				discard--
			}
			break
		}
		pos += idx
		discard = pos
		if len(staged)-pos < MinFrameSize {
			break
		}

		f, consumed, err := Parse(staged[pos:])
		switch {
		case err == nil:
			f.Payload = append([]byte(nil), f.Payload...)
			fn(f)
			decoded++
			pos += consumed
			discard = pos
		case errors.Is(err, ErrIncompleteFrame):
			break scan
		default:
			pos++
			discard = pos
		}
	}

	_ = rb.Discard(discard)
	return decoded
}
