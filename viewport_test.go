package main

import "testing"

func TestViewportGeometry(t *testing.T) {
	vp := NewViewport(120, 30)

	if vp.TextWidth() != 120-GutterWidth {
		t.Errorf("TextWidth = %d", vp.TextWidth())
	}
	if vp.MenuRows() != 1 {
		t.Errorf("wide terminal should fit the menu on one row, got %d", vp.MenuRows())
	}
	if vp.TextHeight() != 30-4-1 {
		t.Errorf("TextHeight = %d", vp.TextHeight())
	}
}

func TestViewportMenuWraps(t *testing.T) {
	vp := NewViewport(40, 30)
	if vp.MenuRows() < 2 {
		t.Errorf("narrow terminal should wrap the menu, got %d rows", vp.MenuRows())
	}
	joined := ""
	for _, chunk := range vp.MenuChunks() {
		if len(chunk) > vp.Width-1 {
			t.Errorf("menu chunk wider than screen: %q", chunk)
		}
		joined += chunk
	}
	if joined != menuText {
		t.Error("menu chunks should reconstruct the menu text")
	}
}

func TestViewportRowsAreContiguous(t *testing.T) {
	for _, dims := range [][2]int{{120, 30}, {40, 12}, {200, 8}} {
		vp := NewViewport(dims[0], dims[1])
		lastTextRow := vp.TextTop() + vp.TextHeight() - 1
		if vp.PromptRow() < lastTextRow+1 {
			t.Errorf("%v: prompt row %d overlaps text ending at %d", dims, vp.PromptRow(), lastTextRow)
		}
		if vp.StatusRow() != vp.PromptRow()+1 {
			t.Errorf("%v: status row %d not below prompt %d", dims, vp.StatusRow(), vp.PromptRow())
		}
		if vp.DividerRow() != vp.StatusRow()+1 {
			t.Errorf("%v: divider row %d not below status %d", dims, vp.DividerRow(), vp.StatusRow())
		}
		if vp.DividerRow()+vp.MenuRows() > vp.Height {
			t.Errorf("%v: menu overflows the screen", dims)
		}
	}
}

func TestEnsureVisible(t *testing.T) {
	vp := NewViewport(120, 30) // TextHeight = 25

	// Cursor inside the window: offset unchanged.
	if got := vp.EnsureVisible(10, 5); got != 5 {
		t.Errorf("inside window: offset = %d, want 5", got)
	}

	// Cursor above the window: snap to it.
	if got := vp.EnsureVisible(3, 5); got != 3 {
		t.Errorf("above window: offset = %d, want 3", got)
	}

	// Cursor below the window: bottom-align.
	if got := vp.EnsureVisible(40, 5); got != 40-vp.TextHeight()+1 {
		t.Errorf("below window: offset = %d", got)
	}
}

func TestEnsureVisibleAfterResize(t *testing.T) {
	vp := NewViewport(120, 30)
	offset := vp.EnsureVisible(40, 0)

	vp.Resize(120, 10)
	offset = vp.EnsureVisible(40, offset)
	if 40 < offset || 40 >= offset+vp.TextHeight() {
		t.Errorf("cursor row 40 not visible after shrink: offset %d, height %d", offset, vp.TextHeight())
	}
}
