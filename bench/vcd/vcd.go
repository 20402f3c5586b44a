// Package vcd writes value-change-dump waveform files.
//
// A Writer is populated in two phases: the model registers its scope
// tree and signals (BeginScope, AddSignal, EndScope), then Open writes
// the header and Dump records one sample per call. The first dump
// emits every signal inside a $dumpvars block; later dumps emit only
// the signals whose value changed since the previous sample, with one
// #timestamp line per dump.
package vcd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

type defKind int

const (
	defScope defKind = iota
	defUpscope
	defVar
)

// definition is one header event, replayed in registration order.
type definition struct {
	kind defKind
	name string
	sig  *signal
}

type signal struct {
	name  string
	width int
	get   func() uint64
	id    string
	prev  uint64
}

// Writer records registered signals to a VCD file.
type Writer struct {
	defs    []definition
	signals []*signal

	maxDepth int
	depth    int // current scope nesting during registration

	timeUnit       string
	timeResolution string

	f       *os.File
	w       *bufio.Writer
	started bool // $dumpvars block emitted
	samples uint64
}

// New returns an empty Writer with unlimited hierarchy depth and a
// picosecond timescale.
func New() *Writer {
	return &Writer{
		maxDepth:       int(^uint(0) >> 1),
		timeUnit:       "ps",
		timeResolution: "ps",
	}
}

// SetMaxDepth limits how many levels of scope nesting are recorded.
// Signals registered below the limit are omitted from the trace.
// Non-positive depths are ignored.
func (w *Writer) SetMaxDepth(depth int) {
	if depth > 0 {
		w.maxDepth = depth
	}
}

// SetTimeUnit declares the unit one timestamp count stands for.
func (w *Writer) SetTimeUnit(unit string) { w.timeUnit = unit }

// SetTimeResolution declares the finest time step the trace resolves.
// Plain VCD carries a single $timescale, so the resolution is kept
// only to mirror the writer's configuration surface.
func (w *Writer) SetTimeResolution(res string) { w.timeResolution = res }

// BeginScope opens a module scope in the hierarchy.
func (w *Writer) BeginScope(name string) {
	w.depth++
	if w.depth > w.maxDepth {
		return
	}
	w.defs = append(w.defs, definition{kind: defScope, name: name})
}

// EndScope closes the innermost open scope.
func (w *Writer) EndScope() {
	if w.depth <= w.maxDepth {
		w.defs = append(w.defs, definition{kind: defUpscope})
	}
	w.depth--
}

// AddSignal registers a signal of the given bit width in the current
// scope. The getter is sampled on every dump; it must stay valid for
// the Writer's lifetime.
func (w *Writer) AddSignal(name string, width int, get func() uint64) {
	if w.depth > w.maxDepth {
		return
	}
	s := &signal{name: name, width: width, get: get, id: idCode(len(w.signals))}
	w.signals = append(w.signals, s)
	w.defs = append(w.defs, definition{kind: defVar, name: name, sig: s})
}

// idCode maps a signal index to a short printable VCD identifier,
// little-endian over the 94 printable ASCII characters '!'..'~'.
func idCode(n int) string {
	const base = 94
	id := make([]byte, 0, 2)
	for {
		id = append(id, byte('!'+n%base))
		n /= base
		if n == 0 {
			return string(id)
		}
	}
}

// Open creates the backing file and writes the VCD header. Signal
// registration must be complete before calling it.
func (w *Writer) Open(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "vcd: create %s", path)
	}
	w.f = f
	w.w = bufio.NewWriter(f)
	w.writeHeader()
	return nil
}

func (w *Writer) writeHeader() {
	fmt.Fprintf(w.w, "$version hdlbench $end\n")
	fmt.Fprintf(w.w, "$timescale 1%s $end\n", w.timeUnit)
	for _, d := range w.defs {
		switch d.kind {
		case defScope:
			fmt.Fprintf(w.w, "$scope module %s $end\n", d.name)
		case defUpscope:
			fmt.Fprintf(w.w, "$upscope $end\n")
		case defVar:
			fmt.Fprintf(w.w, "$var wire %d %s %s $end\n", d.sig.width, d.sig.id, d.sig.name)
		}
	}
	fmt.Fprintf(w.w, "$enddefinitions $end\n")
}

// Dump records one sample at the given timestamp. Dumping before Open
// is a no-op.
func (w *Writer) Dump(timestamp uint64) {
	if w.w == nil {
		return
	}
	fmt.Fprintf(w.w, "#%d\n", timestamp)
	if !w.started {
		fmt.Fprintf(w.w, "$dumpvars\n")
		for _, s := range w.signals {
			v := s.get()
			w.writeValue(s, v)
			s.prev = v
		}
		fmt.Fprintf(w.w, "$end\n")
		w.started = true
		w.samples++
		return
	}
	for _, s := range w.signals {
		v := s.get()
		if v != s.prev {
			w.writeValue(s, v)
			s.prev = v
		}
	}
	w.samples++
}

func (w *Writer) writeValue(s *signal, v uint64) {
	if s.width == 1 {
		fmt.Fprintf(w.w, "%d%s\n", v&1, s.id)
		return
	}
	fmt.Fprintf(w.w, "b%s %s\n", strconv.FormatUint(v, 2), s.id)
}

// Samples reports how many dumps have been recorded.
func (w *Writer) Samples() uint64 { return w.samples }

// Flush pushes buffered samples through to the file.
func (w *Writer) Flush() error {
	if w.w == nil {
		return nil
	}
	if err := w.w.Flush(); err != nil {
		return errors.Wrap(err, "vcd: flush")
	}
	return nil
}

// Close flushes and closes the backing file. Closing an unopened or
// already-closed Writer is a no-op.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	flushErr := w.Flush()
	closeErr := w.f.Close()
	w.f = nil
	w.w = nil
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "vcd: close")
	}
	return nil
}
