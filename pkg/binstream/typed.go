package binstream

import "encoding/binary"

// Fixed-width integer conveniences over the byte-buffer forms. Values are
// encoded little-endian; the aligned variants align on the value's byte
// size. They carry the same contracts as Write, WriteAligned, Read and
// ReadAligned.

func (w *Writer) WriteUint8(v uint8) error {
	return w.Write([]byte{v})
}

func (w *Writer) WriteUint16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.Write(b[:])
}

func (w *Writer) WriteUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.Write(b[:])
}

func (w *Writer) WriteUint64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.Write(b[:])
}

func (w *Writer) WriteUint8Aligned(v uint8) error {
	return w.WriteAligned([]byte{v}, 1)
}

func (w *Writer) WriteUint16Aligned(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.WriteAligned(b[:], 2)
}

func (w *Writer) WriteUint32Aligned(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.WriteAligned(b[:], 4)
}

func (w *Writer) WriteUint64Aligned(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.WriteAligned(b[:], 8)
}

func (r *Reader) ReadUint8() (uint8, error) {
	var b [1]byte
	if err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	var b [2]byte
	if err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	var b [4]byte
	if err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	var b [8]byte
	if err := r.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (r *Reader) ReadUint8Aligned() (uint8, error) {
	var b [1]byte
	if err := r.ReadAligned(b[:], 1); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16Aligned() (uint16, error) {
	var b [2]byte
	if err := r.ReadAligned(b[:], 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (r *Reader) ReadUint32Aligned() (uint32, error) {
	var b [4]byte
	if err := r.ReadAligned(b[:], 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (r *Reader) ReadUint64Aligned() (uint64, error) {
	var b [8]byte
	if err := r.ReadAligned(b[:], 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
