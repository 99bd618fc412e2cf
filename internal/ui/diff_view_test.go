package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pstuifzand/tui-diffview/internal/diff"
)

// collapsibleFile builds a file diff whose body starts with a context run
// long enough to be collapsed.
func collapsibleFile() *diff.FileDiff {
	var b strings.Builder
	b.WriteString("diff --git a/main.go b/main.go\n")
	b.WriteString("@@ -1,11 +1,11 @@\n")
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&b, " line%d\n", i)
	}
	b.WriteString("+added\n")
	return &diff.FileDiff{Filename: "main.go", Content: b.String()}
}

func TestDiffViewRowFlattening(t *testing.T) {
	dv := NewDiffViewWidget(4)
	dv.SetFile(collapsibleFile())

	// file header, hunk header, collapse label, 3 leading context + 1 added
	if got := dv.RowCount(); got != 7 {
		t.Fatalf("RowCount() = %d, want 7", got)
	}

	if dv.rows[0].kind != rowFileHeader {
		t.Errorf("row 0 kind = %d, want rowFileHeader", dv.rows[0].kind)
	}
	if dv.rows[1].kind != rowHunkHeader {
		t.Errorf("row 1 kind = %d, want rowHunkHeader", dv.rows[1].kind)
	}
	if dv.rows[2].kind != rowCollapsed {
		t.Errorf("row 2 kind = %d, want rowCollapsed", dv.rows[2].kind)
	}
	if !strings.Contains(dv.rows[2].text, "7 unchanged lines") {
		t.Errorf("collapse label = %q, want it to mention 7 unchanged lines", dv.rows[2].text)
	}
}

func TestDiffViewToggleCollapsedRegion(t *testing.T) {
	dv := NewDiffViewWidget(4)
	dv.SetFile(collapsibleFile())

	// Move the cursor onto the collapse label
	dv.CursorDown()
	dv.CursorDown()

	if !dv.ToggleAtCursor() {
		t.Fatal("ToggleAtCursor() on a collapse label should return true")
	}
	if got := dv.RowCount(); got != 14 {
		t.Errorf("RowCount() after expand = %d, want 14", got)
	}

	// Hidden lines follow the label when expanded
	if dv.rows[3].kind != rowLine || dv.rows[3].line.Text != "line1" {
		t.Errorf("first expanded row = %+v, want context line1", dv.rows[3])
	}

	if !dv.ToggleAtCursor() {
		t.Fatal("ToggleAtCursor() should collapse the region again")
	}
	if got := dv.RowCount(); got != 7 {
		t.Errorf("RowCount() after collapse = %d, want 7", got)
	}
}

func TestDiffViewToggleOnPlainLine(t *testing.T) {
	dv := NewDiffViewWidget(4)
	dv.SetFile(collapsibleFile())

	if dv.ToggleAtCursor() {
		t.Error("ToggleAtCursor() on a header row should return false")
	}
}

func TestDiffViewCursorClamping(t *testing.T) {
	dv := NewDiffViewWidget(4)
	dv.SetFile(collapsibleFile())

	dv.CursorUp()
	if dv.cursor != 0 {
		t.Errorf("cursor = %d after CursorUp at top, want 0", dv.cursor)
	}

	dv.Page(100)
	if dv.cursor != dv.RowCount()-1 {
		t.Errorf("cursor = %d after large Page, want %d", dv.cursor, dv.RowCount()-1)
	}

	dv.CursorHome()
	if dv.cursor != 0 {
		t.Errorf("cursor = %d after CursorHome, want 0", dv.cursor)
	}

	dv.CursorEnd()
	if dv.cursor != dv.RowCount()-1 {
		t.Errorf("cursor = %d after CursorEnd, want %d", dv.cursor, dv.RowCount()-1)
	}
}
