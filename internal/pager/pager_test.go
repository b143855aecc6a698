package pager

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obops/obadmin/internal/render"
	"github.com/obops/obadmin/internal/result"
	"github.com/obops/obadmin/internal/testutil"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{5, 0, 5}, // degenerate size clamps to 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestPageBounds(t *testing.T) {
	start, end := PageBounds(0, 20, 45)
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)

	start, end = PageBounds(2, 20, 45)
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)
}

func rowsSet(n int) *result.Set {
	set := &result.Set{Headers: []string{"id", "name"}}
	for i := 0; i < n; i++ {
		set.Rows = append(set.Rows, result.Row{
			result.Int(int64(i + 1)),
			result.Text(fmt.Sprintf("name-%d", i+1)),
		})
	}
	return set
}

func testPager(out *strings.Builder, in *testutil.ScriptReader, size int) *Pager {
	return &Pager{
		Out: out,
		In:  in,
		Renderer: &render.Renderer{
			Policy:     render.DefaultWidthPolicy(),
			MaxColumns: render.DefaultMaxColumns,
			Width:      func() int { return 80 },
		},
		PageSize: size,
	}
}

func TestPagerEmptySet(t *testing.T) {
	var out strings.Builder
	p := testPager(&out, &testutil.ScriptReader{}, 10)
	p.Run(&result.Set{Headers: []string{"a"}})
	assert.Equal(t, "(no results)\n", out.String())
}

func TestPagerNavigation(t *testing.T) {
	var out strings.Builder
	in := &testutil.ScriptReader{Lines: []string{"n", "n", "p", "q"}}
	p := testPager(&out, in, 20)
	p.Run(rowsSet(45))
	got := out.String()

	assert.Contains(t, got, "Rows 1-20 / 45")
	assert.Contains(t, got, "Rows 21-40 / 45")
	assert.Contains(t, got, "Rows 41-45 / 45")
	assert.Contains(t, got, "name-45")
}

func TestPagerNextOnLastPage(t *testing.T) {
	var out strings.Builder
	in := &testutil.ScriptReader{Lines: []string{"n", "q"}}
	p := testPager(&out, in, 20)
	p.Run(rowsSet(5))
	assert.Contains(t, out.String(), "Already on the last page.")
	// The window never moves.
	assert.Equal(t, 2, strings.Count(out.String(), "Rows 1-5 / 5"))
}

func TestPagerPreviousOnFirstPage(t *testing.T) {
	var out strings.Builder
	in := &testutil.ScriptReader{Lines: []string{"p", "q"}}
	p := testPager(&out, in, 20)
	p.Run(rowsSet(30))
	assert.Contains(t, out.String(), "Already on the first page.")
	assert.NotContains(t, out.String(), "Rows 21-30")
}

func TestPagerSaveReceivesWholeSet(t *testing.T) {
	var out strings.Builder
	var saved *result.Set
	in := &testutil.ScriptReader{Lines: []string{"n", "s", "q"}}
	p := testPager(&out, in, 20)
	p.Save = func(set *result.Set) error {
		saved = set
		return nil
	}

	set := rowsSet(45)
	p.Run(set)

	// Save gets the full set even when invoked from page two.
	assert.Same(t, set, saved)
	assert.Len(t, saved.Rows, 45)
}

func TestPagerSaveFailureNoticed(t *testing.T) {
	var out strings.Builder
	in := &testutil.ScriptReader{Lines: []string{"s", "q"}}
	p := testPager(&out, in, 20)
	p.Save = func(*result.Set) error { return fmt.Errorf("disk full") }
	p.Run(rowsSet(3))
	assert.Contains(t, out.String(), "Save failed: disk full")
}

func TestPagerInvalidCommand(t *testing.T) {
	var out strings.Builder
	in := &testutil.ScriptReader{Lines: []string{"zz", "q"}}
	p := testPager(&out, in, 20)
	p.Run(rowsSet(3))
	assert.Contains(t, out.String(), "Invalid command.")
}

func TestPagerEOFExits(t *testing.T) {
	var out strings.Builder
	p := testPager(&out, &testutil.ScriptReader{}, 20)
	p.Run(rowsSet(3)) // script exhausted immediately: io.EOF quits the loop
	assert.Contains(t, out.String(), "Rows 1-3 / 3")
}

func TestPagerLayoutDecidedOnce(t *testing.T) {
	// A newline in a first-page cell keeps every page vertical, including
	// pages whose own cells are clean.
	var out strings.Builder
	in := &testutil.ScriptReader{Lines: []string{"n", "q"}}
	p := testPager(&out, in, 2)

	set := rowsSet(4)
	set.Rows[0][1] = result.Text("a\nb")
	p.Run(set)

	assert.Contains(t, out.String(), "[ Row 1 ]")
	assert.NotContains(t, out.String(), "│")
}
