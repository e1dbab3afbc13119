package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gzx-tools/gzmeta/pkg/gzfile"
)

func report(w io.Writer, name string) error {
	f, err := gzfile.ParseFile(name)
	if err != nil {
		return err
	}
	printReport(w, name, f)
	return nil
}

func printReport(w io.Writer, name string, f *gzfile.File) {
	h := &f.Header

	fmt.Fprintf(w, "%s: valid gzip file\n", name)
	if h.IsDeflate() {
		fmt.Fprintln(w, "compression method: deflate")
	} else {
		fmt.Fprintf(w, "compression method: reserved (0x%02x)\n", h.Method)
	}
	if names := h.FlagNames(); len(names) > 0 {
		fmt.Fprintf(w, "flags set: %s\n", strings.Join(names, " | "))
	}
	if mtime, ok := h.ModTime(); ok {
		if *flagUTC {
			mtime = mtime.UTC()
		}
		fmt.Fprintf(w, "modification time: %s\n", mtime.Format("02.01.2006 15:04:05"))
	}
	fmt.Fprintf(w, "XFL: 0x%02x\n", h.ExtraFlags)
	fmt.Fprintf(w, "OS: %s\n", gzfile.OSName(h.OS))

	fl := &f.Fields
	if h.HasExtra() {
		fmt.Fprintf(w, "extra field (%d bytes): % x\n", len(fl.Extra), fl.Extra)
		// Best effort: extra fields are not required to use the
		// subfield convention.
		if subs, err := gzfile.Subfields(fl.Extra); err == nil {
			for _, sf := range subs {
				fmt.Fprintf(w, "  subfield %c%c: %d bytes\n", sf.ID[0], sf.ID[1], len(sf.Data))
			}
		}
	}
	if h.HasName() {
		fmt.Fprintf(w, "filename: %s%s\n", fl.Name, truncMark(fl.NameTruncated))
	}
	if h.HasComment() {
		fmt.Fprintf(w, "comment: %s%s\n", fl.Comment, truncMark(fl.CommentTruncated))
	}
	if h.HasHeaderCRC() {
		fmt.Fprintf(w, "header checksum: 0x%04x\n", fl.HeaderCRC)
	}

	fmt.Fprintf(w, "checksum: 0x%08x\n", f.Trailer.CRC32)
	fmt.Fprintf(w, "isize: %d (0x%x)\n", f.Trailer.ISize, f.Trailer.ISize)
}

func truncMark(truncated bool) string {
	if truncated {
		return " (truncated)"
	}
	return ""
}
