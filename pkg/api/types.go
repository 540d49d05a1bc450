package api

import "github.com/ssargent/bifrost/pkg/frame"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the inspector server
type ServerConfig struct {
	Port         int
	Bind         string
	APIKey       string
	MaxScanBytes int // Largest stream accepted by a single scan request
	LogLevel     string
}

// FrameSummary describes one decoded frame in a scan response. Payload
// is base64-encoded in JSON.
type FrameSummary struct {
	Offset      int    `json:"offset"`
	Counter     uint16 `json:"counter"`
	PayloadSize uint16 `json:"payload_size"`
	HeaderCRC   uint16 `json:"header_crc"`
	PayloadCRC  uint16 `json:"payload_crc"`
	Payload     []byte `json:"payload"`
}

// ScanResponse is the result of scanning one submitted stream
type ScanResponse struct {
	ScanID     string         `json:"scan_id"`
	Frames     []FrameSummary `json:"frames"`
	Stats      frame.Stats    `json:"stats"`
	Incomplete bool           `json:"incomplete_trailing"`
}

// StatsResponse aggregates scan outcomes since the server started
type StatsResponse struct {
	Scans int         `json:"scans"`
	Stats frame.Stats `json:"stats"`
}
