package render

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/playcount/internal/catalog"
	"github.com/matthewbaird/playcount/internal/repl/interpreter"
)

func TestRender_PlainMessage(t *testing.T) {
	r := New(false)
	out := r.Render(interpreter.Result{Next: catalog.New(), Message: "added artist 'bob'"})
	assert.Equal(t, "added artist 'bob'", out)
}

func TestRender_Error(t *testing.T) {
	r := New(false)
	err := errors.New("unknown artist 'nobody'")
	out := r.Render(interpreter.Result{Next: catalog.New(), Message: err.Error(), Err: err})
	assert.Equal(t, "error: unknown artist 'nobody'", out)
}

func TestRender_Names(t *testing.T) {
	r := New(false)
	out := r.Render(interpreter.Result{
		Next:    catalog.New(),
		Message: "albums by 'bob'",
		Names:   []string{"live", "okie dokie"},
	})
	assert.Contains(t, out, "albums by 'bob'\n")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "okie dokie")
	assert.Contains(t, out, "live")
}

func TestRender_TopTracks(t *testing.T) {
	r := New(false)
	store := catalog.FromMap(map[string]map[string]map[string]uint64{
		"bob": {"okie dokie": {"infusion": 12345}},
	})
	res := interpreter.Execute(store, "list top 1 tracks")
	out := r.Render(res)
	assert.Contains(t, out, "top 1 track")
	assert.Contains(t, out, "Listens")
	assert.Contains(t, out, "infusion")
	assert.Contains(t, out, "okie dokie")
	assert.Contains(t, out, "12,345")
}

func TestRender_TopArtists(t *testing.T) {
	r := New(true)
	store := catalog.FromMap(map[string]map[string]map[string]uint64{
		"bob":   {"a": {"x": 1000}},
		"alice": {"b": {"y": 2}},
	})
	out := r.Render(interpreter.Execute(store, "list top 5 artists"))
	assert.Contains(t, out, "top 2 artists")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "alice")
}

func TestRender_EmptyListIsMessageOnly(t *testing.T) {
	r := New(false)
	out := r.Render(interpreter.Execute(catalog.New(), "list top 3 tracks"))
	assert.Equal(t, "no tracks found", out)
}

func TestRenderInput_CaretUnderParsePosition(t *testing.T) {
	r := New(false)
	line := "list top x tracks"
	out := r.RenderInput(line, interpreter.Execute(catalog.New(), line))
	// "x" starts at byte 9.
	assert.Equal(t, "error: unrecognized input\n  list top x tracks\n  "+strings.Repeat(" ", 9)+"^", out)
}

func TestRenderInput_CaretAtEndOfInput(t *testing.T) {
	r := New(false)
	line := "add artist"
	out := r.RenderInput(line, interpreter.Execute(catalog.New(), line))
	assert.True(t, strings.HasSuffix(out, "\n  add artist\n  "+strings.Repeat(" ", len(line))+"^"), out)
}

func TestRenderInput_CaretCountsColumnsNotBytes(t *testing.T) {
	r := New(false)
	line := "add album björk x"
	out := r.RenderInput(line, interpreter.Execute(catalog.New(), line))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	// 18 bytes but 17 columns; the parser ran out of input.
	assert.Equal(t, "  "+strings.Repeat(" ", 17)+"^", lines[2])
}

func TestRenderInput_NoCaretForOtherResults(t *testing.T) {
	r := New(false)
	line := "add album x by nobody"
	assert.Equal(t, "error: unknown artist 'nobody'", r.RenderInput(line, interpreter.Execute(catalog.New(), line)))

	line = "add artist bob"
	assert.Equal(t, "added artist 'bob'", r.RenderInput(line, interpreter.Execute(catalog.New(), line)))
}

func TestListens(t *testing.T) {
	assert.Equal(t, "0", Listens(0))
	assert.Equal(t, "1,234,567", Listens(1234567))
	assert.Equal(t, "18,446,744,073,709,551,615", Listens(math.MaxUint64))
}

func TestBanner(t *testing.T) {
	assert.Contains(t, Banner("v1.2.3"), "playcount v1.2.3")
}
