package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/bifrost/pkg/frame"
)

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleScan scans the raw byte stream in the request body and returns
// every frame recovered from it, in stream order, with scan statistics.
// CRC failures are reported in the statistics rather than failing the
// request: the scanner already resynchronizes past them.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	limit := s.config.MaxScanBytes
	if limit <= 0 {
		limit = 1 << 20
	}

	stream, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(limit)))
	if err != nil {
		sendError(w, "Request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return
	}

	scanID := ksuid.New().String()

	var collector frame.StatsCollector
	scanner := frame.NewScanner(stream)
	scanner.Observe(&collector, s.metrics)

	resp := ScanResponse{
		ScanID: scanID,
		Frames: []FrameSummary{},
	}
	for scanner.Next() {
		f := scanner.Frame()
		start := scanner.Offset() - frame.FrameSize(len(f.Payload))
		resp.Frames = append(resp.Frames, FrameSummary{
			Offset:      start,
			Counter:     f.Header.Counter,
			PayloadSize: f.Header.PayloadSize,
			HeaderCRC:   f.Header.HeaderCRC,
			PayloadCRC:  f.PayloadCRC,
			Payload:     append([]byte(nil), f.Payload...),
		})
	}
	resp.Stats = collector.Stats
	resp.Incomplete = errors.Is(scanner.Err(), frame.ErrIncompleteFrame)

	s.mu.Lock()
	s.scans++
	s.total.Add(collector.Stats)
	s.mu.Unlock()

	s.logger.Info().
		Str("scan_id", scanID).
		Int("stream_bytes", len(stream)).
		Int("frames", collector.Stats.FramesDecoded).
		Int("resynced_bytes", collector.Stats.BytesResynced).
		Msg("stream scanned")

	sendSuccess(w, resp)
}

// handleStats reports aggregate scan outcomes since the server started
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := StatsResponse{
		Scans: s.scans,
		Stats: s.total,
	}
	s.mu.Unlock()

	sendSuccess(w, resp)
}
