// Package main provides gzmeta, a command-line tool that reports the
// header and trailer metadata of gzip files without decompressing them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const version = "1.0"

var (
	flagUTC     = pflag.Bool("utc", false, "print the modification time in UTC instead of local time")
	flagHelp    = pflag.BoolP("help", "h", false, "give this help")
	flagVersion = pflag.BoolP("version", "V", false, "display version number")
)

func main() {
	pflag.Parse()

	if *flagHelp {
		usage()
		return
	}
	if *flagVersion {
		fmt.Println("gzmeta", version)
		return
	}

	files := pflag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(1)
	}

	for _, name := range files {
		if err := report(os.Stdout, name); err != nil {
			fmt.Fprintf(os.Stderr, "gzmeta: %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Println(`Usage: gzmeta [OPTION]... FILE...
Print gzip (RFC 1952) header and trailer metadata for each FILE.

Only the container is inspected; nothing is decompressed and no checksum
is verified. For files with multiple gzip members, the header of the first
member is reported.

  -h, --help     give this help
  -V, --version  display version number
      --utc      print the modification time in UTC instead of local time`)
}
