package console

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewbaird/playcount/internal/repl/render"
	"github.com/matthewbaird/playcount/internal/repl/session"
)

// fakeReader replays scripted lines, each optionally replaced by an error.
type fakeReader struct {
	lines   []string
	errs    map[int]error
	prompts []string
	history []string
}

func (f *fakeReader) Prompt(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	i := len(f.prompts) - 1
	if err, ok := f.errs[i]; ok {
		return "", err
	}
	if i >= len(f.lines) {
		return "", io.EOF
	}
	return f.lines[i], nil
}

func (f *fakeReader) AppendHistory(item string) { f.history = append(f.history, item) }

func newConsole() (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out, session.New(), render.New(false), "> "), &out
}

func silenceLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestConsole_RunUntilQuit(t *testing.T) {
	c, out := newConsole()
	in := &fakeReader{lines: []string{
		"add artist bob",
		"   ",
		"  list top 1 artists  ",
		"quit",
		"add artist never",
	}}

	require.NoError(t, c.Run(in, "hello"))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "hello\n"))
	assert.Contains(t, text, "added artist 'bob'")
	assert.Contains(t, text, "top 1 artist")
	assert.Contains(t, text, "quitting")
	assert.NotContains(t, text, "never")
	assert.Equal(t, []string{"add artist bob", "list top 1 artists", "quit"}, in.history)
	assert.Len(t, in.prompts, 4)
	assert.Equal(t, "> ", in.prompts[0])
	assert.False(t, c.Session().Store().HasArtist("never"))
}

func TestConsole_RunEndOfInput(t *testing.T) {
	c, out := newConsole()
	require.NoError(t, c.Run(&fakeReader{lines: []string{"add artist bob"}}, ""))
	assert.True(t, strings.HasSuffix(out.String(), "\ngoodbye\n"))
	assert.True(t, c.Session().Store().HasArtist("bob"))
}

func TestConsole_RunCtrlC(t *testing.T) {
	c, out := newConsole()
	in := &fakeReader{
		lines: []string{"", "add artist bob"},
		errs:  map[int]error{0: liner.ErrPromptAborted},
	}
	require.NoError(t, c.Run(in, ""))
	assert.Contains(t, out.String(), "^C\n")
	assert.True(t, c.Session().Store().HasArtist("bob"))
}

func TestConsole_RunReadError(t *testing.T) {
	c, _ := newConsole()
	boom := errors.New("boom")
	err := c.Run(&fakeReader{errs: map[int]error{0: boom}}, "")
	assert.ErrorIs(t, err, boom)
}

func TestConsole_RunErrorsKeepStore(t *testing.T) {
	c, out := newConsole()
	in := &fakeReader{lines: []string{"add artist bob", "add album x by nobody", "nonsense"}}
	require.NoError(t, c.Run(in, ""))
	assert.Contains(t, out.String(), "error: unknown artist 'nobody'")
	assert.Contains(t, out.String(), "error: unrecognized input\n  nonsense\n  ^\n")
	assert.Equal(t, []string{"bob"}, c.Session().Store().Artists())
}

func TestConsole_RunMetaCommands(t *testing.T) {
	c, out := newConsole()
	in := &fakeReader{lines: []string{"add artist bob", ":history", ":clear", ":bogus"}}
	require.NoError(t, c.Run(in, ""))
	text := out.String()
	assert.Contains(t, text, "  1  add artist bob")
	assert.Contains(t, text, clearScreen)
	assert.Contains(t, text, "error: unknown meta-command ':bogus'")
}

func TestConsole_RunScript(t *testing.T) {
	logs := silenceLog(t)
	c, out := newConsole()
	script := strings.Join([]string{
		"# seed the catalog",
		"add artist bob",
		"",
		`add album "okie dokie" by bob`,
		`add track infusion on "okie dokie" by bob`,
		`listen to infusion on "okie dokie" by bob`,
		`listen to missing on "okie dokie" by bob`,
		"list top 5 tracks",
		"quit",
		"add artist after",
	}, "\n")

	failed, err := c.RunScript(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Contains(t, logs.String(), "script: line 7: unknown track 'missing'")
	assert.Contains(t, out.String(), "infusion")
	assert.False(t, c.Session().Store().HasArtist("after"))

	n, err := c.Session().Store().Listens("bob", "okie dokie", "infusion")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func TestConsole_RunScriptWithoutQuit(t *testing.T) {
	silenceLog(t)
	c, _ := newConsole()
	failed, err := c.RunScript(strings.NewReader("add artist a\nadd artist b\n"))
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, []string{"a", "b"}, c.Session().Store().Artists())
}

func TestLastLines(t *testing.T) {
	assert.Equal(t, "b\nc\n", lastLines("a\nb\nc\n", 2))
	assert.Equal(t, "a\nb\n", lastLines("a\nb\n", 5))
	assert.Equal(t, "", lastLines("", 3))
}

func TestEditor_ClosePersistsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	e := NewEditor(path, 2, nil)
	e.AppendHistory("one")
	e.AppendHistory("two")
	e.AppendHistory("three")
	require.NoError(t, e.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree\n", string(data))
}
