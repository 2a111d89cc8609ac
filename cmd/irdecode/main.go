// cmd/irdecode/main.go
//
// irdecode replays a capture of falling-edge timestamps through the same
// detector that runs on the microcontroller and prints what it decodes.
// With -encode it does the reverse and writes the capture of one key press.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sparques/irdetect/avremote"
	"github.com/sparques/irdetect/driver/stub"
	"github.com/sparques/irdetect/internal/capture"
	"github.com/sparques/irdetect/internal/config"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "receiver config (YAML)")
		encode  = flag.String("encode", "", "write the capture for the named key instead of decoding")
		start   = flag.Uint("start", 100000, "timestamp of the first edge for -encode, in microseconds")
	)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: irdecode [-config ir.yaml] capture.txt")
		fmt.Fprintln(flag.CommandLine.Output(), "       irdecode [-config ir.yaml] -encode KEY [-start us]")
		flag.PrintDefaults()
	}
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg := &config.Config{}
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)
	keymap := cfg.Keymap()

	if *encode != "" {
		cmd, ok := keymap.Find(*encode)
		if !ok {
			log.Fatalf("unknown key %q", *encode)
		}
		if err := capture.Write(os.Stdout, fmt.Sprintf("%s (%d)", *encode, uint16(cmd)), cmd.Edges(uint32(*start))); err != nil {
			log.Fatalf("write capture: %v", err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open capture: %v", err)
	}
	defer f.Close()

	edges, err := capture.Read(f)
	if err != nil {
		log.Fatalf("read capture: %v", err)
	}

	stats, err := replay(os.Stdout, edges, keymap, cfg.Options()...)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	log.Printf("edges=%d frames=%d aborted=%d dropped=%d",
		len(edges), stats.Frames, stats.Aborted, stats.Dropped)
}

// replay feeds edges to a detector on a stub pin, draining after every edge,
// and writes one "timestamp code name" line per decoded command.
func replay(w io.Writer, edges []uint32, keymap avremote.Keymap, opts ...avremote.Option) (avremote.Stats, error) {
	pin := stub.NewPin(0)
	clock := &stub.Clock{}

	det, err := avremote.NewDetector(pin, clock, opts...)
	if err != nil {
		return avremote.Stats{}, err
	}
	defer det.Close()

	if err := det.Setup(); err != nil {
		return avremote.Stats{}, err
	}

	for _, ts := range edges {
		clock.Set(ts)
		pin.Fall()
		for det.Available() {
			cmd := det.Pop()
			name, ok := keymap.Lookup(cmd)
			if !ok {
				name = avremote.Unknown
			}
			fmt.Fprintf(w, "%d %d %s\n", ts, uint16(cmd), name)
		}
	}
	return det.Stats(), nil
}
