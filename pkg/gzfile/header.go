// Package gzfile provides types and functions for reading gzip (RFC 1952)
// container metadata without decompressing the payload.
//
// A gzip member starts with a fixed 10-byte header, followed by optional
// variable-length fields selected by the header's flag byte, then the
// deflate payload, and ends with an 8-byte trailer. This package reads the
// header, the optional fields, and the trailer of the first member; it never
// touches the compressed payload.
package gzfile

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Magic bytes identifying a gzip member header.
var Magic = [2]byte{0x1f, 0x8b}

// HeaderSize is the fixed binary size of a member header.
const HeaderSize = 10 // id1 + id2 + cm + flg + 4-byte mtime + xfl + os

// CMDeflate is the only compression method defined by RFC 1952. Other
// values are reserved, so they are reported rather than rejected.
const CMDeflate = 0x08

// Flag bits of the FLG header byte.
const (
	FlagText      = 1 << 0 // FTEXT: payload is probably ASCII text
	FlagHeaderCRC = 1 << 1 // FHCRC: CRC16 of the header follows
	FlagExtra     = 1 << 2 // FEXTRA: extra field follows
	FlagName      = 1 << 3 // FNAME: original file name follows
	FlagComment   = 1 << 4 // FCOMMENT: file comment follows

	flagReserved = 0xe0 // bits 5-7, reserved by RFC 1952
)

// Operating system codes from RFC 1952 section 2.3.1.
const (
	OSFat       = 0
	OSAmiga     = 1
	OSVMS       = 2
	OSUnix      = 3
	OSVMCMS     = 4
	OSAtariTOS  = 5
	OSHPFS      = 6
	OSMacintosh = 7
	OSZSystem   = 8
	OSCPM       = 9
	OSTops20    = 10
	OSNTFS      = 11
	OSQDOS      = 12
	OSAcorn     = 13
	OSUnknown   = 255
)

var osNames = map[byte]string{
	OSFat:       "FAT filesystem",
	OSAmiga:     "Amiga",
	OSVMS:       "VMS",
	OSUnix:      "UNIX",
	OSVMCMS:     "VM/CMS",
	OSAtariTOS:  "Atari TOS",
	OSHPFS:      "HPFS filesystem",
	OSMacintosh: "Macintosh",
	OSZSystem:   "Z-System",
	OSCPM:       "CP/M",
	OSTops20:    "TOPS-20",
	OSNTFS:      "NTFS filesystem",
	OSQDOS:      "QDOS",
	OSAcorn:     "Acorn RISCOS",
	OSUnknown:   "unknown",
}

// OSName returns the RFC 1952 name for an operating system code.
func OSName(os byte) string {
	if name, ok := osNames[os]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", os)
}

// Header represents the fixed 10-byte prefix of a gzip member.
type Header struct {
	ID1        byte   // first magic byte, 0x1f
	ID2        byte   // second magic byte, 0x8b
	Method     byte   // compression method, see CMDeflate
	Flags      byte   // FLG bitfield, see Flag constants
	MTime      uint32 // Unix timestamp of the original file, 0 if unset
	ExtraFlags byte   // XFL, compressor tuning info, opaque
	OS         byte   // originating operating system, see OSName
}

// Size returns the binary size of the header.
func (h *Header) Size() int {
	return HeaderSize
}

// Validate checks the magic bytes.
func (h *Header) Validate() error {
	if h.ID1 != Magic[0] || h.ID2 != Magic[1] {
		return fmt.Errorf("magic %02x %02x, want %02x %02x: %w",
			h.ID1, h.ID2, Magic[0], Magic[1], ErrInvalidMagic)
	}
	return nil
}

// EncodeTo writes the header to the given buffer.
// The buffer must be at least HeaderSize bytes.
func (h *Header) EncodeTo(buf []byte) {
	buf[0] = h.ID1
	buf[1] = h.ID2
	buf[2] = h.Method
	buf[3] = h.Flags
	binary.LittleEndian.PutUint32(buf[4:8], h.MTime)
	buf[8] = h.ExtraFlags
	buf[9] = h.OS
}

// DecodeFrom reads the header from the given buffer.
// Does not validate - use Validate to check the magic.
func (h *Header) DecodeFrom(data []byte) {
	h.ID1 = data[0]
	h.ID2 = data[1]
	h.Method = data[2]
	h.Flags = data[3]
	h.MTime = binary.LittleEndian.Uint32(data[4:8])
	h.ExtraFlags = data[8]
	h.OS = data[9]
}

// IsDeflate reports whether the compression method is the one value
// RFC 1952 defines.
func (h *Header) IsDeflate() bool {
	return h.Method == CMDeflate
}

// IsText reports the FTEXT hint bit.
func (h *Header) IsText() bool {
	return h.Flags&FlagText != 0
}

// HasHeaderCRC reports whether a CRC16 of the header is present.
func (h *Header) HasHeaderCRC() bool {
	return h.Flags&FlagHeaderCRC != 0
}

// HasExtra reports whether an extra field is present.
func (h *Header) HasExtra() bool {
	return h.Flags&FlagExtra != 0
}

// HasName reports whether an original file name is present.
func (h *Header) HasName() bool {
	return h.Flags&FlagName != 0
}

// HasComment reports whether a file comment is present.
func (h *Header) HasComment() bool {
	return h.Flags&FlagComment != 0
}

// ReservedFlags returns the reserved bits 5-7 of the flag byte. Non-zero
// values are reported, never rejected.
func (h *Header) ReservedFlags() byte {
	return h.Flags & flagReserved
}

// IsUnix reports whether the member was written on a UNIX system.
func (h *Header) IsUnix() bool {
	return h.OS == OSUnix
}

// ModTime converts the MTime field to a local time. ok is false when the
// field is zero, which RFC 1952 defines as "no timestamp available".
func (h *Header) ModTime() (mtime time.Time, ok bool) {
	if h.MTime == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(h.MTime), 0), true
}

// FlagNames returns the RFC 1952 names of all set flag bits, in bit order.
// Reserved bits appear as "reserved(n)".
func (h *Header) FlagNames() []string {
	var names []string
	if h.IsText() {
		names = append(names, "FTEXT")
	}
	if h.HasHeaderCRC() {
		names = append(names, "FHCRC")
	}
	if h.HasExtra() {
		names = append(names, "FEXTRA")
	}
	if h.HasName() {
		names = append(names, "FNAME")
	}
	if h.HasComment() {
		names = append(names, "FCOMMENT")
	}
	for bit := 5; bit <= 7; bit++ {
		if h.Flags&(1<<bit) != 0 {
			names = append(names, fmt.Sprintf("reserved(%d)", bit))
		}
	}
	return names
}
