package rbuf

import (
	"encoding/binary"
)

func NewBuffer(bs []byte) *Buffer {
	return &Buffer{
		bs: bs,
	}
}

func (b *Buffer) Len() int {
	return len(b.bs)
}

// Bytes returns the underlying slice without copying. Mutating the result
// mutates the buffer.
func (b *Buffer) Bytes() []byte {
	return b.bs
}

func (b *Buffer) Append(bs ...byte) {
	b.bs = append(b.bs, bs...)
}

func (b *Buffer) checkBounds(offset int, n int) error {
	if offset < 0 || offset+n > len(b.bs) {
		return InvalidBufferError{
			Offset: offset,
			Need:   n,
			Have:   len(b.bs),
		}
	}
	return nil
}

func (b *Buffer) ReadUint16(offset int) (uint16, error) {
	if err := b.checkBounds(offset, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.bs[offset:]), nil
}

func (b *Buffer) WriteUint16(offset int, value uint16) error {
	if err := b.checkBounds(offset, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.bs[offset:], value)
	return nil
}

func (b *Buffer) ByteAt(offset int) (byte, error) {
	if err := b.checkBounds(offset, 1); err != nil {
		return 0, err
	}
	return b.bs[offset], nil
}

func (b *Buffer) SetByteAt(offset int, value byte) error {
	if err := b.checkBounds(offset, 1); err != nil {
		return err
	}
	b.bs[offset] = value
	return nil
}
