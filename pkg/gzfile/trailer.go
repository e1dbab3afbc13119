package gzfile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// TrailerSize is the fixed binary size of the member trailer.
const TrailerSize = 8

// Trailer is the 8-byte record closing a gzip stream. It always sits in
// the last TrailerSize bytes of the file, regardless of which optional
// header fields were present.
type Trailer struct {
	CRC32 uint32 // CRC-32 of the uncompressed data, not verified here
	ISize uint32 // uncompressed size modulo 2^32
}

// DecodeFrom reads the trailer from the given buffer.
// The buffer must be at least TrailerSize bytes.
func (t *Trailer) DecodeFrom(data []byte) {
	t.CRC32 = binary.LittleEndian.Uint32(data[0:4])
	t.ISize = binary.LittleEndian.Uint32(data[4:8])
}

// EncodeTo writes the trailer to the given buffer.
// The buffer must be at least TrailerSize bytes.
func (t *Trailer) EncodeTo(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], t.CRC32)
	binary.LittleEndian.PutUint32(buf[4:8], t.ISize)
}

// ReadTrailer seeks to TrailerSize bytes before the end of r and decodes
// the trailer found there. It does not depend on any cursor state left
// behind by header reads and may be called on its own.
func ReadTrailer(r io.ReadSeeker) (Trailer, error) {
	var t Trailer
	off, err := r.Seek(-TrailerSize, io.SeekEnd)
	if err != nil {
		return t, fmt.Errorf("seek to trailer: %v: %w", err, ErrSeekOutOfRange)
	}
	if off < 0 {
		return t, fmt.Errorf("seek to trailer landed at %d: %w", off, ErrSeekOutOfRange)
	}
	var buf [TrailerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return t, fmt.Errorf("read trailer at offset %d: %w", off, truncated(err))
	}
	t.DecodeFrom(buf[:])
	return t, nil
}
