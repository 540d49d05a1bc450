// Package telemetry exports frame scanning outcomes as Prometheus
// metrics. CRC failures are routine on a lossy link, so they are
// counters to watch, not errors to fail on.
package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/bifrost/pkg/frame"
)

// Metrics implements frame.Observer, counting decoded frames, decode
// failures by reason, and bytes skipped during resynchronization.
type Metrics struct {
	framesDecoded prometheus.Counter
	decodeErrors  *prometheus.CounterVec
	bytesResynced prometheus.Counter
}

// NewMetrics creates metrics registered on the default Prometheus
// registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates metrics registered on reg. Tests use this with
// a private registry.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		framesDecoded: factory.NewCounter(prometheus.CounterOpts{
			Name: "bifrost_frames_decoded_total",
			Help: "Total number of frames decoded successfully",
		}),
		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bifrost_decode_errors_total",
			Help: "Total number of frame decode failures by reason",
		}, []string{"reason"}),
		bytesResynced: factory.NewCounter(prometheus.CounterOpts{
			Name: "bifrost_resync_bytes_total",
			Help: "Total bytes skipped while resynchronizing past invalid data",
		}),
	}
}

// FrameDecoded implements frame.Observer.
func (m *Metrics) FrameDecoded(*frame.Frame) {
	m.framesDecoded.Inc()
}

// DecodeError implements frame.Observer.
func (m *Metrics) DecodeError(err error) {
	m.decodeErrors.WithLabelValues(reason(err)).Inc()
}

// Resync implements frame.Observer.
func (m *Metrics) Resync(skipped int) {
	m.bytesResynced.Add(float64(skipped))
}

func reason(err error) string {
	switch {
	case errors.Is(err, frame.ErrInvalidHeaderCRC):
		return "header_crc"
	case errors.Is(err, frame.ErrInvalidPayloadCRC):
		return "payload_crc"
	case errors.Is(err, frame.ErrInvalidPreamble):
		return "preamble"
	case errors.Is(err, frame.ErrPayloadTooLarge):
		return "payload_too_large"
	default:
		return "other"
	}
}
