package gzfile

import (
	"errors"
	"io"
)

var (
	// ErrInvalidMagic is returned when the first two bytes of the stream
	// are not the gzip magic. Nothing past the magic is read.
	ErrInvalidMagic = errors.New("gzfile: invalid magic bytes")

	// ErrTruncated is returned when the stream ends before a field is
	// complete. The wrapping error names the field being read.
	ErrTruncated = errors.New("gzfile: truncated input")

	// ErrSeekOutOfRange is returned when the trailer offset cannot be
	// reached, i.e. the stream is shorter than the trailer itself.
	ErrSeekOutOfRange = errors.New("gzfile: seek out of range")
)

// truncated maps end-of-stream read errors to ErrTruncated and passes
// everything else through.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
