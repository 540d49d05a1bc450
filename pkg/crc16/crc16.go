// Package crc16 implements the CRC-16/CCITT-FALSE checksum used by the
// Bifrost wire format for header and payload integrity.
package crc16

// CRC-16/CCITT-FALSE parameters.
const (
	Polynomial uint16 = 0x1021
	Init       uint16 = 0xFFFF
)

// table holds one entry per possible leading byte. It is computed during
// package initialization, so it is complete before any goroutine can call
// Checksum and there is no lazy-build race.
var table = makeTable()

func makeTable() [256]uint16 {
	var t [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ Polynomial
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Checksum computes the CRC-16/CCITT-FALSE of data. It is deterministic
// and safe for concurrent use. The checksum of an empty input is Init.
func Checksum(data []byte) uint16 {
	crc := Init
	for _, b := range data {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}
