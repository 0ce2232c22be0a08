// Package main is the entry point for utf8scan, a small validator built on
// the smallstr library. It checks that files are well-formed UTF-8,
// reporting the offset of the first invalid byte, and can decode legacy
// encodings and print content statistics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/dshills/smallstr"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("utf8scan %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	var enc encoding.Encoding
	if opts.encodingName != "" {
		e, err := ianaindex.IANA.Encoding(opts.encodingName)
		if err != nil || e == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown encoding %q\n", opts.encodingName)
			return 2
		}
		enc = e
	}

	names := opts.files
	if len(names) == 0 {
		names = []string{"-"}
	}

	exit := 0
	for _, name := range names {
		if err := scanOne(name, enc, opts.stats); err != nil {
			exit = 1
		}
	}
	return exit
}

type options struct {
	showVersion  bool
	stats        bool
	encodingName string
	files        []string
}

func parseFlags() options {
	var opts options

	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.BoolVar(&opts.stats, "stats", false, "Print byte/rune/grapheme/width statistics")
	flag.StringVar(&opts.encodingName, "encoding", "", "Decode input from the named IANA encoding before validating")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validates files (or stdin) as UTF-8.\n\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	opts.files = flag.Args()
	return opts
}

func scanOne(name string, enc encoding.Encoding, stats bool) error {
	data, err := readInput(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
		return err
	}

	var s *smallstr.String
	if enc != nil {
		s, err = smallstr.DecodeBytes(data, enc)
	} else {
		s, err = smallstr.FromBytes(data)
	}
	if err != nil {
		var verr *smallstr.InvalidUTF8Error
		if errors.As(err, &verr) {
			fmt.Printf("%s: invalid UTF-8 at byte offset %d\n", name, verr.Offset)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
		}
		return err
	}

	if stats {
		fmt.Printf("%s: ok (%d bytes, %d runes, %d graphemes, width %d)\n",
			name, s.Len(), utf8.RuneCount(s.Bytes()), s.GraphemeCount(), s.Width())
	} else {
		fmt.Printf("%s: ok\n", name)
	}
	return nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
