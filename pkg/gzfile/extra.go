package gzfile

import (
	"encoding/binary"
	"fmt"
)

// Subfield is one entry of the extra field, as laid out by RFC 1952
// section 2.3.1.1: two subfield ID bytes followed by a little-endian
// 16-bit length prefix and that many data bytes.
type Subfield struct {
	ID   [2]byte
	Data []byte
}

// Subfields splits an extra-field blob into its subfields. Data slices
// alias the input. A length prefix running past the end of the blob yields
// ErrTruncated; extra fields are not required to follow the subfield
// convention, so callers should treat a failure here as "opaque blob", not
// as a malformed member.
func Subfields(extra []byte) ([]Subfield, error) {
	var subs []Subfield
	for off := 0; off < len(extra); {
		if len(extra)-off < 4 {
			return nil, fmt.Errorf("subfield header at offset %d: %w", off, ErrTruncated)
		}
		var sf Subfield
		sf.ID[0], sf.ID[1] = extra[off], extra[off+1]
		n := int(binary.LittleEndian.Uint16(extra[off+2 : off+4]))
		off += 4
		if len(extra)-off < n {
			return nil, fmt.Errorf("subfield %c%c data (%d bytes) at offset %d: %w",
				sf.ID[0], sf.ID[1], n, off, ErrTruncated)
		}
		sf.Data = extra[off : off+n]
		off += n
		subs = append(subs, sf)
	}
	return subs, nil
}
