package binio

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Reader wraps an io.ReadSeeker with position helpers and fixed-width,
// endianness-explicit read methods.
type Reader struct {
	rs io.ReadSeeker
}

// NewReader creates a new Reader wrapping the given io.ReadSeeker.
func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{rs: rs}
}

// NewBytesReader creates a Reader over an in-memory byte window.
func NewBytesReader(b []byte) *Reader {
	return &Reader{rs: bytes.NewReader(b)}
}

// Inner returns the wrapped stream.
func (r *Reader) Inner() io.ReadSeeker {
	return r.rs
}

// Pos returns the current byte position.
func (r *Reader) Pos() (int64, error) {
	return r.rs.Seek(0, io.SeekCurrent)
}

// Len returns the total length of the stream, including bytes already read.
func (r *Reader) Len() (int64, error) {
	pos, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.rs.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// BytesLeft returns the number of bytes remaining in the stream.
func (r *Reader) BytesLeft() (int64, error) {
	pos, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.rs.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end - pos, nil
}

// Seek repositions the stream.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return r.rs.Seek(offset, whence)
}

// Skip advances the stream by n bytes.
func (r *Reader) Skip(n int64) error {
	_, err := r.rs.Seek(n, io.SeekCurrent)
	return err
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.rs, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r.rs, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadU16 reads a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r.rs, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadU24 reads a big-endian 24-bit unsigned value.
func (r *Reader) ReadU24() (uint32, error) {
	var buf [3]byte
	if _, err := io.ReadFull(r.rs, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

// ReadU32 reads a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.rs, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadI16 reads a big-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadI32 reads a big-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU16LE reads a little-endian uint16.
func (r *Reader) ReadU16LE() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r.rs, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.rs, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadPString reads a length-prefixed (pascal) byte string: one length byte
// followed by that many raw bytes. The bytes are returned undecoded; text
// conversion is the caller's concern.
func (r *Reader) ReadPString() ([]byte, error) {
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(int(n))
}
