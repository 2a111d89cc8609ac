// Package capture reads and writes recordings of falling-edge timestamps.
//
// A capture is plain text: one unsigned decimal microsecond timestamp per
// line. Blank lines and lines starting with '#' are ignored.
package capture

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses a capture from r.
func Read(r io.Reader) ([]uint32, error) {
	var out []uint32
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("capture: line %d: %w", line, err)
		}
		out = append(out, uint32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	return out, nil
}

// Write emits timestamps in the format Read accepts, preceded by a comment
// line when comment is not empty.
func Write(w io.Writer, comment string, timestamps []uint32) error {
	bw := bufio.NewWriter(w)
	if comment != "" {
		fmt.Fprintf(bw, "# %s\n", comment)
	}
	for _, ts := range timestamps {
		bw.WriteString(strconv.FormatUint(uint64(ts), 10))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
