package rbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteUint16(t *testing.T) {
	buffer := NewBuffer(make([]byte, 4))

	err := buffer.WriteUint16(1, 0x0102)
	assert.NoError(t, err)
	// big-endian on the wire
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x00}, buffer.Bytes())

	value, err := buffer.ReadUint16(1)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0102), value)
}

func TestReadUint16OutOfBounds(t *testing.T) {
	buffer := NewBuffer(make([]byte, 4))

	_, err := buffer.ReadUint16(3)
	assert.ErrorAs(t, err, &InvalidBufferError{})

	_, err = buffer.ReadUint16(-1)
	assert.ErrorAs(t, err, &InvalidBufferError{})
}

func TestAppendGrows(t *testing.T) {
	buffer := NewBuffer(nil)
	buffer.Append(1, 2)
	buffer.Append(3)
	assert.Equal(t, 3, buffer.Len())
	assert.Equal(t, []byte{1, 2, 3}, buffer.Bytes())
}

func TestSegmentHeaderAt(t *testing.T) {
	buffer := NewBuffer([]byte{0x00, 0x14, 0x80, 0xFF})

	header, err := buffer.SegmentHeaderAt(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, header.Offset())
	assert.Equal(t, uint16(20), header.Length())
	assert.Equal(t, byte(AttrExplicit), header.Attributes())
	assert.False(t, header.HasPadding())
}

func TestSegmentHeaderAtOutOfBounds(t *testing.T) {
	buffer := NewBuffer([]byte{0x00, 0x14})

	_, err := buffer.SegmentHeaderAt(0)
	assert.ErrorAs(t, err, &InvalidBufferError{})
}

func TestSegmentHeaderSetLength(t *testing.T) {
	buffer := NewBuffer(make([]byte, 5))

	header, err := buffer.SegmentHeaderAt(2)
	assert.NoError(t, err)

	header.SetLength(0x1234)
	assert.Equal(t, []byte{0x00, 0x00, 0x12, 0x34, 0x00}, buffer.Bytes())
	assert.Equal(t, uint16(0x1234), header.Length())
}

func TestSegmentHeaderSetPaddingKeepsOtherBits(t *testing.T) {
	buffer := NewBuffer([]byte{0x00, 0x00, AttrExplicit | AttrSuccessor})

	header, err := buffer.SegmentHeaderAt(0)
	assert.NoError(t, err)

	header.SetPadding()
	assert.True(t, header.HasPadding())
	assert.Equal(t, byte(AttrExplicit|AttrSuccessor|AttrPadding), header.Attributes())
}
