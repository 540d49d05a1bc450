package frame

import (
	"bytes"
	"errors"
)

var preamble = []byte{PreambleByte0, PreambleByte1}

// Stats accumulates the outcomes of a scan.
type Stats struct {
	FramesDecoded    int `json:"frames_decoded"`
	HeaderCRCErrors  int `json:"header_crc_errors"`
	PayloadCRCErrors int `json:"payload_crc_errors"`
	BytesResynced    int `json:"bytes_resynced"`
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.FramesDecoded += other.FramesDecoded
	s.HeaderCRCErrors += other.HeaderCRCErrors
	s.PayloadCRCErrors += other.PayloadCRCErrors
	s.BytesResynced += other.BytesResynced
}

// Observer receives scan events. Implementations must not retain the
// frame passed to FrameDecoded past the call.
type Observer interface {
	FrameDecoded(f *Frame)
	DecodeError(err error)
	Resync(skipped int)
}

// StatsCollector is an Observer that accumulates counts into Stats.
type StatsCollector struct {
	Stats Stats
}

func (c *StatsCollector) FrameDecoded(*Frame) {
	c.Stats.FramesDecoded++
}

func (c *StatsCollector) DecodeError(err error) {
	switch {
	case errors.Is(err, ErrInvalidHeaderCRC):
		c.Stats.HeaderCRCErrors++
	case errors.Is(err, ErrInvalidPayloadCRC):
		c.Stats.PayloadCRCErrors++
	}
}

func (c *StatsCollector) Resync(skipped int) {
	c.Stats.BytesResynced += skipped
}

// Scan walks stream looking for frames, invoking fn once per decoded
// frame in stream order, and returns the number of frames decoded. It
// returns 0 without doing any work when stream or fn is nil.
//
// After a decode failure other than ErrIncompleteFrame the cursor
// advances by exactly one byte and the preamble search resumes, so a
// corrupted frame cannot hide later valid frames whose preambles are
// intact. ErrIncompleteFrame stops the scan: the trailing bytes may
// still extend into a valid frame and must not be skipped.
//
// The frame passed to fn aliases stream; see Frame.
func Scan(stream []byte, fn func(*Frame)) int {
	if stream == nil || fn == nil {
		return 0
	}
	s := NewScanner(stream)
	n := 0
	for s.Next() {
		fn(s.Frame())
		n++
	}
	return n
}

// Scanner is a pull-based iterator over the frames in a byte stream,
// applying the same resynchronization policy as Scan. A typical loop:
//
//	s := frame.NewScanner(stream)
//	for s.Next() {
//		use(s.Frame())
//	}
//	if err := s.Err(); err != nil {
//		// trailing bytes form an incomplete frame candidate
//	}
type Scanner struct {
	stream []byte
	pos    int
	frame  *Frame
	err    error
	obs    []Observer
}

// NewScanner creates a scanner over stream starting at offset 0. A
// scanner over stream[offset:] restarts iteration from any byte offset.
func NewScanner(stream []byte) *Scanner {
	return &Scanner{stream: stream}
}

// Observe registers observers notified of decode and resync events.
func (s *Scanner) Observe(obs ...Observer) {
	s.obs = append(s.obs, obs...)
}

// Next advances to the next decodable frame. It returns false when no
// further frame can be decoded; Err distinguishes a clean end of stream
// from an incomplete trailing candidate.
func (s *Scanner) Next() bool {
	s.frame = nil
	if s.err != nil {
		return false
	}
	for s.pos < len(s.stream) {
		idx := bytes.Index(s.stream[s.pos:], preamble)
		if idx < 0 {
			s.pos = len(s.stream)
			return false
		}
		s.pos += idx
		if len(s.stream)-s.pos < MinFrameSize {
			return false
		}

		f, consumed, err := Parse(s.stream[s.pos:])
		switch {
		case err == nil:
			s.frame = f
			s.pos += consumed
			for _, o := range s.obs {
				o.FrameDecoded(f)
			}
			return true
		case errors.Is(err, ErrIncompleteFrame):
			// The candidate may still grow into a valid frame;
			// scanning past it would risk consuming its bytes.
			s.err = err
			return false
		default:
			for _, o := range s.obs {
				o.DecodeError(err)
				o.Resync(1)
			}
			s.pos++
		}
	}
	return false
}

// Frame returns the frame decoded by the last successful Next. The
// payload aliases the scanned stream.
func (s *Scanner) Frame() *Frame {
	return s.frame
}

// Offset returns the current cursor position: after a successful Next it
// is the first byte past the decoded frame.
func (s *Scanner) Offset() int {
	return s.pos
}

// Err returns ErrIncompleteFrame if iteration stopped on a partial
// trailing candidate, nil if the stream was fully scanned.
func (s *Scanner) Err() error {
	return s.err
}
