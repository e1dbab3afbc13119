package gzfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Maximum byte counts for the null-terminated optional fields. Reading
// stops at the boundary and the field is marked truncated; the bytes past
// the boundary are left unconsumed.
const (
	MaxNameLen    = 256
	MaxCommentLen = 4096
)

// Fields holds the optional header fields selected by the flag byte.
// Presence is defined by the corresponding Header flag bit, not by the
// zero value: a member without FNAME has Name == "" and no byte of the
// stream was consumed for it.
type Fields struct {
	Extra            []byte // FEXTRA payload, opaque; see Subfields
	Name             string // FNAME, original file name
	NameTruncated    bool   // Name hit MaxNameLen before a terminator
	Comment          string // FCOMMENT, free-text comment
	CommentTruncated bool   // Comment hit MaxCommentLen before a terminator
	HeaderCRC        uint16 // FHCRC, lower 16 bits of the header CRC32, unverified
}

// File is the parsed metadata of a gzip member plus the stream trailer.
type File struct {
	Header  Header
	Fields  Fields
	Trailer Trailer
}

// ReadHeader reads the fixed 10-byte member header from r and validates
// the magic bytes. On a magic mismatch no bytes past the magic are
// consumed and parsing must not continue.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:2]); err != nil {
		return Header{}, fmt.Errorf("read magic: %w", truncated(err))
	}
	if buf[0] != Magic[0] || buf[1] != Magic[1] {
		return Header{}, fmt.Errorf("magic %02x %02x, want %02x %02x: %w",
			buf[0], buf[1], Magic[0], Magic[1], ErrInvalidMagic)
	}
	if _, err := io.ReadFull(r, buf[2:]); err != nil {
		return Header{}, fmt.Errorf("read fixed header: %w", truncated(err))
	}
	var h Header
	h.DecodeFrom(buf[:])
	return h, nil
}

// ReadFields reads the optional fields selected by h.Flags from r, which
// must be positioned immediately after the fixed header. Fields are read
// in the order fixed by RFC 1952: extra, name, comment, header CRC.
//
// The extra-field length prefix is read here, not as part of the fixed
// header, so when FEXTRA is unset the bytes after the OS byte already
// belong to the next present field and no cursor correction is needed.
func ReadFields(r io.Reader, h Header) (Fields, error) {
	var f Fields

	if h.HasExtra() {
		var lbuf [2]byte
		if _, err := io.ReadFull(r, lbuf[:]); err != nil {
			return f, fmt.Errorf("read extra length: %w", truncated(err))
		}
		xlen := binary.LittleEndian.Uint16(lbuf[:])
		f.Extra = make([]byte, xlen)
		if _, err := io.ReadFull(r, f.Extra); err != nil {
			return f, fmt.Errorf("read extra field (%d bytes): %w", xlen, truncated(err))
		}
	}

	if h.HasName() {
		s, trunc, err := readString(r, MaxNameLen)
		if err != nil {
			return f, fmt.Errorf("read file name: %w", err)
		}
		f.Name, f.NameTruncated = s, trunc
	}

	if h.HasComment() {
		s, trunc, err := readString(r, MaxCommentLen)
		if err != nil {
			return f, fmt.Errorf("read comment: %w", err)
		}
		f.Comment, f.CommentTruncated = s, trunc
	}

	if h.HasHeaderCRC() {
		var cbuf [2]byte
		if _, err := io.ReadFull(r, cbuf[:]); err != nil {
			return f, fmt.Errorf("read header checksum: %w", truncated(err))
		}
		f.HeaderCRC = binary.LittleEndian.Uint16(cbuf[:])
	}

	return f, nil
}

// readString reads bytes until a NUL terminator or until max bytes have
// been stored, whichever comes first. The terminator is consumed but not
// stored; truncated reports that the cap stopped the read.
func readString(r io.Reader, max int) (s string, trunc bool, err error) {
	buf := make([]byte, 0, 32)
	var b [1]byte
	for len(buf) < max {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", false, truncated(err)
		}
		if b[0] == 0 {
			return string(buf), false, nil
		}
		buf = append(buf, b[0])
	}
	return string(buf), true, nil
}

// Parse reads the member header, its optional fields, and the stream
// trailer from r, in that order. The first failure aborts the parse and is
// returned as-is. The caller owns r and is responsible for closing it.
func Parse(r io.ReadSeeker) (*File, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	fields, err := ReadFields(r, h)
	if err != nil {
		return nil, err
	}
	t, err := ReadTrailer(r)
	if err != nil {
		return nil, err
	}
	return &File{Header: h, Fields: fields, Trailer: t}, nil
}

// ParseFile opens the named file, parses it, and closes it on every path.
func ParseFile(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
