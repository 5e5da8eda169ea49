package rbuf

type (
	// Buffer is a growable byte buffer that only ever appends, so any view
	// handed out over it stays valid for the buffer's lifetime.
	Buffer struct {
		bs []byte
	}
	// SegmentHeader is a view over the first three bytes of a logical record
	// segment: a big-endian uint16 length field followed by one attribute byte.
	SegmentHeader struct {
		buffer *Buffer
		offset int
	}
)

const (
	SegmentHeaderSize = 3

	// attribute byte bits of a logical record segment
	AttrPadding          = 0x01
	AttrTrailingLength   = 0x02
	AttrChecksum         = 0x04
	AttrEncryptionPacket = 0x08
	AttrEncrypted        = 0x10
	AttrSuccessor        = 0x20
	AttrPredecessor      = 0x40
	AttrExplicit         = 0x80
)
