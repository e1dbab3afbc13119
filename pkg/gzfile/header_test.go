package gzfile

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestHeader(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		original := &Header{
			ID1:        Magic[0],
			ID2:        Magic[1],
			Method:     CMDeflate,
			Flags:      FlagName | FlagComment,
			MTime:      1700000000,
			ExtraFlags: 0x02,
			OS:         OSUnix,
		}

		buf := make([]byte, HeaderSize)
		original.EncodeTo(buf)

		decoded := &Header{}
		decoded.DecodeFrom(buf)

		if *decoded != *original {
			t.Errorf("mismatch: got %+v, want %+v", decoded, original)
		}
	})

	t.Run("ValidateMagic", func(t *testing.T) {
		h := &Header{ID1: Magic[0], ID2: Magic[1]}
		if err := h.Validate(); err != nil {
			t.Errorf("valid magic rejected: %v", err)
		}

		h = &Header{ID1: 0x50, ID2: 0x4b}
		err := h.Validate()
		if !errors.Is(err, ErrInvalidMagic) {
			t.Errorf("expected ErrInvalidMagic, got %v", err)
		}
	})

	t.Run("WireLayout", func(t *testing.T) {
		// mtime must be little-endian at bytes 4-7.
		data := []byte{0x1f, 0x8b, 0x08, 0x00, 0x78, 0x56, 0x34, 0x12, 0x02, 0x03}
		h := &Header{}
		h.DecodeFrom(data)
		if h.MTime != 0x12345678 {
			t.Errorf("mtime: got 0x%08x, want 0x12345678", h.MTime)
		}
		if h.ExtraFlags != 0x02 || h.OS != 0x03 {
			t.Errorf("xfl/os: got 0x%02x/0x%02x", h.ExtraFlags, h.OS)
		}
	})
}

func TestHeaderFlags(t *testing.T) {
	t.Run("AllDefined", func(t *testing.T) {
		h := &Header{Flags: 0x1f}
		if !h.IsText() || !h.HasHeaderCRC() || !h.HasExtra() || !h.HasName() || !h.HasComment() {
			t.Errorf("flag byte 0x1f should set every defined predicate: %+v", h)
		}
		want := []string{"FTEXT", "FHCRC", "FEXTRA", "FNAME", "FCOMMENT"}
		if got := h.FlagNames(); !reflect.DeepEqual(got, want) {
			t.Errorf("FlagNames: got %v, want %v", got, want)
		}
	})

	t.Run("None", func(t *testing.T) {
		h := &Header{}
		if names := h.FlagNames(); len(names) != 0 {
			t.Errorf("FlagNames on empty flag byte: got %v", names)
		}
	})

	t.Run("Reserved", func(t *testing.T) {
		h := &Header{Flags: 0xa8} // FNAME plus reserved bits 5 and 7
		if got := h.ReservedFlags(); got != 0xa0 {
			t.Errorf("ReservedFlags: got 0x%02x, want 0xa0", got)
		}
		want := []string{"FNAME", "reserved(5)", "reserved(7)"}
		if got := h.FlagNames(); !reflect.DeepEqual(got, want) {
			t.Errorf("FlagNames: got %v, want %v", got, want)
		}
	})
}

func TestHeaderModTime(t *testing.T) {
	h := &Header{MTime: 0}
	if _, ok := h.ModTime(); ok {
		t.Error("zero mtime should report not available")
	}

	h.MTime = 1700000000
	mtime, ok := h.ModTime()
	if !ok {
		t.Fatal("non-zero mtime should be available")
	}
	if !mtime.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("mtime: got %v", mtime)
	}
}

func TestOSName(t *testing.T) {
	cases := []struct {
		os   byte
		want string
	}{
		{OSFat, "FAT filesystem"},
		{OSUnix, "UNIX"},
		{OSMacintosh, "Macintosh"},
		{OSAcorn, "Acorn RISCOS"},
		{OSUnknown, "unknown"},
		{42, "unknown (42)"},
	}
	for _, c := range cases {
		if got := OSName(c.os); got != c.want {
			t.Errorf("OSName(%d): got %q, want %q", c.os, got, c.want)
		}
	}

	h := Header{OS: OSUnix}
	if !h.IsUnix() {
		t.Error("OS 0x03 should be UNIX")
	}
	h.OS = OSNTFS
	if h.IsUnix() {
		t.Error("OS 0x0b should not be UNIX")
	}
}

func TestHeaderMethod(t *testing.T) {
	h := &Header{ID1: Magic[0], ID2: Magic[1], Method: 0x07}
	// Reserved methods are reported, not rejected.
	if err := h.Validate(); err != nil {
		t.Errorf("reserved method should not fail validation: %v", err)
	}
	if h.IsDeflate() {
		t.Error("method 0x07 should not be deflate")
	}
	h.Method = CMDeflate
	if !h.IsDeflate() {
		t.Error("method 0x08 should be deflate")
	}
}
