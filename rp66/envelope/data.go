package envelope

const (
	// StorageUnitLabelSize is the fixed preamble before the first visible
	// record of a storage unit.
	StorageUnitLabelSize = 80
	// VisibleRecordHeaderSize covers the 2-byte length field and the 2-byte
	// format version that follow the storage unit label.
	VisibleRecordHeaderSize = 4
	// DefaultSegmentOffset is where the first logical record segment starts
	// when exactly one segment follows the visible record header.
	DefaultSegmentOffset = StorageUnitLabelSize + VisibleRecordHeaderSize
	// MinSegmentLength is the smallest segment length the format permits.
	MinSegmentLength = 20
	// PadByte fills every padding position except the last one, which holds
	// the pad count itself.
	PadByte = 0x01
)
