// Package rp66 stores the code to frame and assemble RP66 v1 (DLIS) record
// streams for test fixtures.
package rp66

import (
	"bytes"

	"dlis-forge/rp66/envelope"
)

const (
	sulVersionOffset   = 4
	sulStructureOffset = 9
)

var (
	sulVersionBytes   = []byte("V1.00")
	sulStructureBytes = []byte("RECORD")
)

// IsStorageUnitLabel reports whether bs starts with a plausible RP66 v1
// storage unit label, going by the version and structure markers.
func IsStorageUnitLabel(bs []byte) bool {
	if len(bs) < envelope.StorageUnitLabelSize {
		return false
	}
	if !bytes.Equal(bs[sulVersionOffset:sulVersionOffset+len(sulVersionBytes)], sulVersionBytes) {
		return false
	}
	return bytes.Equal(bs[sulStructureOffset:sulStructureOffset+len(sulStructureBytes)], sulStructureBytes)
}
