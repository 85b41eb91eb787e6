package render

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"tuicore/geom"
)

var cursorMovePattern = regexp.MustCompile(`\x1b\[[0-9]+;[0-9]+H`)

func TestNewRejectsInvalidSize(t *testing.T) {
	if _, err := New(geom.Size{W: 0, H: 5}, &bytes.Buffer{}, DefaultOptions()); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("New(0,5) error = %v, want ErrInvalidSize", err)
	}
}

func TestNewRejectsGPUBackend(t *testing.T) {
	opts := DefaultOptions()
	opts.BackendPreference = BackendGpu
	if _, err := New(geom.Size{W: 10, H: 5}, &bytes.Buffer{}, opts); !errors.Is(err, ErrGPUBackendUnavailable) {
		t.Fatalf("New(gpu backend) error = %v, want ErrGPUBackendUnavailable", err)
	}
}

func TestFirstFlushIsFullRedrawEvenWithNoWrites(t *testing.T) {
	var out bytes.Buffer
	r, err := New(geom.Size{W: 4, H: 2}, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("first Flush produced no output, want a full-surface redraw")
	}
	if r.Stats().Frames != 1 {
		t.Fatalf("Stats().Frames = %d, want 1", r.Stats().Frames)
	}
}

func TestSecondFlushWithNoChangesIsNoOp(t *testing.T) {
	var out bytes.Buffer
	r, err := New(geom.Size{W: 4, H: 2}, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("first Flush() error = %v", err)
	}
	out.Reset()
	if err := r.Flush(); err != nil {
		t.Fatalf("second Flush() error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("second Flush with no dirty cells wrote %d bytes, want 0", out.Len())
	}
	if r.Stats().Frames != 1 {
		t.Fatalf("Stats().Frames = %d, want 1 (the no-op flush shouldn't count)", r.Stats().Frames)
	}
}

func TestFlushWritesDirtyText(t *testing.T) {
	var out bytes.Buffer
	r, err := New(geom.Size{W: 10, H: 2}, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("first Flush() error = %v", err)
	}
	out.Reset()

	buf := r.BeginFrame()
	if _, err := buf.WriteText(0, 0, "hi", geom.Style{}); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if !strings.Contains(out.String(), "hi") {
		t.Fatalf("flushed output = %q, want it to contain \"hi\"", out.String())
	}
}

func TestFlushEmitsOneCursorMovePerMergedRegion(t *testing.T) {
	var out bytes.Buffer
	r, err := New(geom.Size{W: 4, H: 3}, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("first Flush() error = %v", err)
	}
	out.Reset()

	r.RequestFullRedraw()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if r.Stats().LastDirtyRegions != 1 {
		t.Fatalf("Stats().LastDirtyRegions = %d, want 1 (a full redraw merges to a single region)", r.Stats().LastDirtyRegions)
	}
	// One CUP addresses the merged region; every flush then ends with one
	// more CUP placing the cursor at its logical position.
	moves := cursorMovePattern.FindAll(out.Bytes(), -1)
	if len(moves) != 2 {
		t.Fatalf("emitted %d cursor-move sequences for a 3-row merged region, want 2 (one CUP for the single post-merge region plus the trailing cursor-position CUP)", len(moves))
	}
}

func TestRequestFullRedrawForcesWholeSurface(t *testing.T) {
	var out bytes.Buffer
	r, err := New(geom.Size{W: 4, H: 2}, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("first Flush() error = %v", err)
	}
	out.Reset()
	r.RequestFullRedraw()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("Flush after RequestFullRedraw produced no output")
	}
}

func TestResizeMarksFullRedraw(t *testing.T) {
	var out bytes.Buffer
	r, err := New(geom.Size{W: 4, H: 2}, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("first Flush() error = %v", err)
	}
	if err := r.Resize(geom.Size{W: 8, H: 4}); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	out.Reset()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush() after Resize error = %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("Flush after Resize produced no output, want a full redraw")
	}
	if r.Stats().Resizes != 1 {
		t.Fatalf("Stats().Resizes = %d, want 1", r.Stats().Resizes)
	}
}

func TestFlushPropagatesWriteError(t *testing.T) {
	r, err := New(geom.Size{W: 4, H: 2}, failingWriter{}, DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Flush(); err == nil {
		t.Fatal("Flush() error = nil, want the write error to propagate")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("boom")
}
