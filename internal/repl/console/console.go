// Package console runs the interactive prompt loop and script mode.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/peterh/liner"

	"github.com/matthewbaird/playcount/internal/repl/meta"
	"github.com/matthewbaird/playcount/internal/repl/render"
	"github.com/matthewbaird/playcount/internal/repl/session"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// maxScriptLine bounds a single script line.
const maxScriptLine = 1 << 20

// LineReader reads one edited line per prompt. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Console connects a session to a terminal.
type Console struct {
	out      io.Writer
	sess     *session.Session
	meta     *meta.Handler
	renderer *render.Renderer
	prompt   string
}

// New creates a console that writes to out.
func New(out io.Writer, sess *session.Session, r *render.Renderer, prompt string) *Console {
	return &Console{
		out:      out,
		sess:     sess,
		meta:     meta.New(),
		renderer: r,
		prompt:   prompt,
	}
}

// Session returns the session the console drives.
func (c *Console) Session() *session.Session { return c.sess }

// Run prompts for lines until quit or end of input. Ctrl+C abandons the
// current line.
func (c *Console) Run(in LineReader, banner string) error {
	if banner != "" {
		fmt.Fprintln(c.out, banner)
	}

	for {
		input, err := in.Prompt(c.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(c.out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out, "\ngoodbye")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line := strings.TrimSpace(input)
		if line == "" {
			continue
		}
		in.AppendHistory(line)

		if quit, _ := c.handle(line); quit {
			return nil
		}
	}
}

// RunScript executes r line by line. Blank lines and lines starting with '#'
// are skipped; quit stops the script. It returns the number of lines that
// failed.
func (c *Console) RunScript(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxScriptLine)

	failed := 0
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := c.handle(line)
		if err != nil {
			log.Printf("script: line %d: %v", n, err)
			failed++
		}
		if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("reading script: %w", err)
	}
	return failed, nil
}

// handle runs one trimmed line and prints its output. It reports whether
// the line ended the session and the error the line produced, if any.
func (c *Console) handle(line string) (bool, error) {
	if meta.IsMeta(line) {
		res, err := c.meta.ExecuteLine(c.sess, line)
		if err != nil {
			fmt.Fprintln(c.out, "error: "+err.Error())
			return false, err
		}
		if res.Clear {
			io.WriteString(c.out, clearScreen)
		}
		if res.Output != "" {
			fmt.Fprintln(c.out, strings.TrimRight(res.Output, "\n"))
		}
		return false, nil
	}

	res := c.sess.Exec(line)
	fmt.Fprintln(c.out, c.renderer.RenderInput(line, res))
	return res.Quit(), res.Err
}
