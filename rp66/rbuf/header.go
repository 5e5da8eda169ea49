package rbuf

// SegmentHeaderAt creates a view over the segment header starting at offset.
// Bounds are checked once here; the buffer never shrinks, so the accessors
// below cannot go out of range afterwards.
func (b *Buffer) SegmentHeaderAt(offset int) (SegmentHeader, error) {
	if err := b.checkBounds(offset, SegmentHeaderSize); err != nil {
		return SegmentHeader{}, err
	}
	return SegmentHeader{
		buffer: b,
		offset: offset,
	}, nil
}

func (h SegmentHeader) Offset() int {
	return h.offset
}

func (h SegmentHeader) Length() uint16 {
	value, _ := h.buffer.ReadUint16(h.offset)
	return value
}

func (h SegmentHeader) SetLength(value uint16) {
	_ = h.buffer.WriteUint16(h.offset, value)
}

func (h SegmentHeader) Attributes() byte {
	value, _ := h.buffer.ByteAt(h.offset + 2)
	return value
}

func (h SegmentHeader) HasPadding() bool {
	return h.Attributes()&AttrPadding != 0
}

func (h SegmentHeader) SetPadding() {
	_ = h.buffer.SetByteAt(h.offset+2, h.Attributes()|AttrPadding)
}
