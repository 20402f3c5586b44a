// Package testutil provides shared test infrastructure for the bench
// and vcd test packages: a minimal VCD reader for scenario assertions.
package testutil

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"
)

// VCDFile is a minimally parsed value-change dump: the declared
// variable names, the sample timestamps in file order, and the value
// changes recorded under each timestamp.
type VCDFile struct {
	Vars       []string
	Timestamps []uint64
	ChangesAt  map[uint64][]string
}

// ParseVCD reads a VCD file written by bench/vcd. It fails the test on
// any malformed line it cares about.
func ParseVCD(t *testing.T, path string) *VCDFile {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open VCD file: %v", err)
	}
	defer f.Close()

	out := &VCDFile{ChangesAt: make(map[uint64][]string)}
	inDefs := true
	var current uint64
	haveTimestamp := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if inDefs {
			if strings.HasPrefix(line, "$var") {
				fields := strings.Fields(line)
				if len(fields) >= 5 {
					out.Vars = append(out.Vars, fields[4])
				}
			}
			if strings.HasPrefix(line, "$enddefinitions") {
				inDefs = false
			}
			continue
		}
		switch {
		case strings.HasPrefix(line, "#"):
			ts, err := strconv.ParseUint(line[1:], 10, 64)
			if err != nil {
				t.Fatalf("Bad timestamp line %q: %v", line, err)
			}
			current = ts
			haveTimestamp = true
			out.Timestamps = append(out.Timestamps, ts)
		case line == "$dumpvars" || line == "$end":
			// structural markers around the initial sample
		default:
			if haveTimestamp {
				out.ChangesAt[current] = append(out.ChangesAt[current], line)
			}
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Failed to scan VCD file: %v", err)
	}
	return out
}

// StrictlyIncreasing reports whether the parsed timestamps only ever
// move forward.
func (v *VCDFile) StrictlyIncreasing() bool {
	for i := 1; i < len(v.Timestamps); i++ {
		if v.Timestamps[i] <= v.Timestamps[i-1] {
			return false
		}
	}
	return true
}
