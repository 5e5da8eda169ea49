// Package envelope rewrites the framing of raw RP66 record bytes: it
// recomputes visible record and logical record segment length fields and
// inserts pad bytes where the segment attributes do not already declare them.
package envelope

import (
	"dlis-forge/ds"
	"dlis-forge/rp66/rbuf"
)

// UpdateVisibleRecordLength writes the length of everything past the storage
// unit label into the visible record length field at offset 80. The buffer
// must hold exactly one visible record starting right after the label.
func UpdateVisibleRecordLength(buffer *rbuf.Buffer) error {
	length := buffer.Len() - StorageUnitLabelSize
	return buffer.WriteUint16(StorageUnitLabelSize, uint16(length))
}

// UpdateVisibleRecordAndSegmentLength fixes the segment starting at
// segmentOffset first, then the outer visible record length. The segment
// rewrite may grow the buffer, so the order matters.
func UpdateVisibleRecordAndSegmentLength(buffer *rbuf.Buffer, segmentOffset int) error {
	if err := UpdateSegmentLength(buffer, segmentOffset); err != nil {
		return err
	}
	return UpdateVisibleRecordLength(buffer)
}

// UpdateSegmentLength recomputes the length field of the logical record
// segment starting at segmentOffset, padding the segment to the 20-byte
// minimum and to an even total length. The bytes must hold exactly one
// segment, starting at its own length field, without a trailing length or
// checksum.
func UpdateSegmentLength(buffer *rbuf.Buffer, segmentOffset int) error {
	header, err := buffer.SegmentHeaderAt(segmentOffset)
	if err != nil {
		return err
	}

	segmentLength := buffer.Len() - segmentOffset
	padNeeded := MinSegmentLength - segmentLength
	if padNeeded < 0 {
		padNeeded = 0
	}

	// A set padding bit means the fixture author already laid the pad bytes
	// out by hand, possibly irregular ones for negative-path fixtures. Trust
	// it and touch nothing but the length field.
	if !header.HasPadding() {
		if (buffer.Len()+padNeeded)%2 == 1 {
			// a single extra byte always restores evenness; no loop needed
			padNeeded++
		}
		if padNeeded > 0 {
			header.SetPadding()
			buffer.Append(padRun(padNeeded)...)
		}
	}

	header.SetLength(uint16(buffer.Len() - segmentOffset))
	return nil
}

// padRun builds n pad bytes where the last byte records n itself, so a reader
// can strip the run without external metadata.
func padRun(n int) []byte {
	run := ds.Repeat(n-1, byte(PadByte))
	return append(run, byte(n))
}
