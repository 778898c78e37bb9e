package main

import (
	"strings"
	"testing"
)

func TestWrapLineShort(t *testing.T) {
	dls := WrapLine("hello", 10, 3)
	if len(dls) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(dls))
	}
	if dls[0].BufferLine != 3 || dls[0].Offset != 0 || dls[0].Text != "hello" {
		t.Errorf("unexpected segment: %+v", dls[0])
	}
}

func TestWrapLineEmpty(t *testing.T) {
	dls := WrapLine("", 10, 0)
	if len(dls) != 1 || dls[0].Text != "" {
		t.Errorf("empty line should map to one empty segment, got %v", dls)
	}
}

func TestWrapLineFixedChunks(t *testing.T) {
	dls := WrapLine("abcdefgh", 5, 0)
	if len(dls) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(dls))
	}
	if dls[0].Text != "abcde" || dls[0].Offset != 0 {
		t.Errorf("first chunk: %+v", dls[0])
	}
	if dls[1].Text != "fgh" || dls[1].Offset != 5 {
		t.Errorf("second chunk: %+v", dls[1])
	}
}

func TestWrapLineExactMultiple(t *testing.T) {
	dls := WrapLine("abcdef", 3, 0)
	if len(dls) != 2 {
		t.Fatalf("length divisible by width: expected 2 segments, got %d", len(dls))
	}
	if dls[1].Text != "def" {
		t.Errorf("second chunk: %q", dls[1].Text)
	}
}

func TestWrapLineSegmentCount(t *testing.T) {
	width := 7
	for length := 0; length <= 30; length++ {
		line := strings.Repeat("x", length)
		want := (length + width - 1) / width
		if want == 0 {
			want = 1
		}
		if got := len(WrapLine(line, width, 0)); got != want {
			t.Errorf("length %d: %d segments, want %d", length, got, want)
		}
	}
}

func TestWrapReconstructsLine(t *testing.T) {
	lines := []string{"", "short", strings.Repeat("abc", 20), "ends on boundary!!"}
	buf := NewBuffer("")
	buf.Lines = lines

	for _, width := range []int{1, 3, 9, 100} {
		dls := WrapBuffer(buf, width)
		rebuilt := make([]string, len(lines))
		for _, dl := range dls {
			rebuilt[dl.BufferLine] += dl.Text
		}
		for i, line := range lines {
			if rebuilt[i] != line {
				t.Errorf("width %d: line %d reconstructed as %q, want %q", width, i, rebuilt[i], line)
			}
		}
	}
}

func TestWrapBufferTagsLines(t *testing.T) {
	buf := NewBuffer("")
	buf.Lines = []string{"abcdefgh", "xy"}
	dls := WrapBuffer(buf, 5)
	if len(dls) != 3 {
		t.Fatalf("expected 3 display lines, got %d", len(dls))
	}
	if dls[0].BufferLine != 0 || dls[1].BufferLine != 0 || dls[2].BufferLine != 1 {
		t.Errorf("buffer line tags: %+v", dls)
	}
}

func TestCursorToDisplayLine(t *testing.T) {
	buf := NewBuffer("")
	buf.Lines = []string{"abcdefgh", "xy"}
	dls := WrapBuffer(buf, 5)

	idx, col := CursorToDisplayLine(dls, 0, 2)
	if idx != 0 || col != 2 {
		t.Errorf("col 2 → (%d, %d), want (0, 2)", idx, col)
	}

	idx, col = CursorToDisplayLine(dls, 0, 7)
	if idx != 1 || col != 2 {
		t.Errorf("col 7 → (%d, %d), want (1, 2)", idx, col)
	}

	idx, col = CursorToDisplayLine(dls, 1, 0)
	if idx != 2 || col != 0 {
		t.Errorf("second line → (%d, %d), want (2, 0)", idx, col)
	}
}

func TestCursorAtChunkBoundary(t *testing.T) {
	buf := NewBuffer("")
	buf.Lines = []string{"abcdefgh"}
	dls := WrapBuffer(buf, 5)

	// Column 5 sits exactly on the wrap point: it belongs to the second
	// segment, rendering at column 0 of the next display row.
	idx, col := CursorToDisplayLine(dls, 0, 5)
	if idx != 1 || col != 0 {
		t.Errorf("boundary column → (%d, %d), want (1, 0)", idx, col)
	}

	// End of the line is the end of the last segment.
	idx, col = CursorToDisplayLine(dls, 0, 8)
	if idx != 1 || col != 3 {
		t.Errorf("end of line → (%d, %d), want (1, 3)", idx, col)
	}
}

func TestCursorAtEndOfFullWidthLastSegment(t *testing.T) {
	buf := NewBuffer("")
	buf.Lines = []string{"abcdefghij"}
	dls := WrapBuffer(buf, 5)

	// Length is an exact multiple of the width, so column 10 can only live
	// at the end of the final segment.
	idx, col := CursorToDisplayLine(dls, 0, 10)
	if idx != 1 || col != 5 {
		t.Errorf("end of exact-multiple line → (%d, %d), want (1, 5)", idx, col)
	}
}
