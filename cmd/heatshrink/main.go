// Command heatshrink is a thin pipe between stdin/stdout and the
// heatshrink codec: compress by default, decompress with -d. It adds no
// codec logic of its own, only argument parsing and buffered I/O.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tinyhs/heatshrink/heatshrink"
)

// Chosen to match the reference implementation's defaults.
const (
	defaultWindowBits    = 9
	defaultLookaheadBits = 7
	defaultInputBufSize  = 1 << 12
)

func main() {
	log.SetFlags(0)
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	decompress := flag.Bool("d", false, "decompress stdin to stdout (default: compress)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-d]\n", os.Args[0])
	}
	if err := flag.CommandLine.Parse(os.Args[1:]); err == flag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	var err error
	if *decompress {
		err = runDecompress(in, out)
	} else {
		err = runCompress(in, out)
	}
	if err != nil {
		log.Fatalf("heatshrink: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("heatshrink: %v", err)
	}
}

func runCompress(r io.Reader, w io.Writer) error {
	enc, err := heatshrink.NewWriter(w, defaultWindowBits, defaultLookaheadBits)
	if err != nil {
		return err
	}
	if _, err := io.Copy(enc, r); err != nil {
		return err
	}
	return enc.Close()
}

func runDecompress(r io.Reader, w io.Writer) error {
	dec, err := heatshrink.NewReader(r, defaultInputBufSize, defaultWindowBits, defaultLookaheadBits)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, dec)
	return err
}
