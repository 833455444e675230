// Package render formats interpreter results for a terminal.
package render

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/matthewbaird/playcount/internal/repl/cql"
	"github.com/matthewbaird/playcount/internal/repl/interpreter"
)

// indent prefixes the echoed input line under a parse error.
const indent = "  "

// Renderer turns a Result into display text.
type Renderer struct {
	heading lipgloss.Style
	errText lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
	cell    lipgloss.Style
	number  lipgloss.Style
}

// New creates a renderer. With color off every style is plain.
func New(color bool) *Renderer {
	r := &Renderer{
		heading: lipgloss.NewStyle(),
		errText: lipgloss.NewStyle(),
		header:  lipgloss.NewStyle().Padding(0, 1),
		border:  lipgloss.NewStyle(),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		number:  lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	}
	if color {
		r.heading = r.heading.Bold(true)
		r.errText = r.errText.Foreground(lipgloss.Color("9"))
		r.header = r.header.Bold(true).Foreground(lipgloss.Color("12"))
		r.border = r.border.Foreground(lipgloss.Color("8"))
	}
	return r
}

// Render returns the text to print for res.
func (r *Renderer) Render(res interpreter.Result) string {
	if res.Failed() {
		return r.errText.Render("error: " + res.Message)
	}

	var body string
	switch {
	case len(res.Names) > 0:
		rows := make([][]string, len(res.Names))
		for i, name := range res.Names {
			rows[i] = []string{strconv.Itoa(i + 1), name}
		}
		body = r.table([]string{"#", "Name"}, rows, 0)

	case len(res.TopTracks) > 0:
		rows := make([][]string, len(res.TopTracks))
		for i, t := range res.TopTracks {
			rows[i] = []string{strconv.Itoa(i + 1), t.Track, t.Album, t.Artist, Listens(t.Listens)}
		}
		body = r.table([]string{"#", "Track", "Album", "Artist", "Listens"}, rows, 0, 4)

	case len(res.TopArtists) > 0:
		rows := make([][]string, len(res.TopArtists))
		for i, a := range res.TopArtists {
			rows[i] = []string{strconv.Itoa(i + 1), a.Artist, Listens(a.Listens)}
		}
		body = r.table([]string{"#", "Artist", "Listens"}, rows, 0, 2)

	default:
		return res.Message
	}

	return r.heading.Render(res.Message) + "\n" + body
}

// RenderInput is Render for the result of line. A parse error is followed by
// the line itself with a caret under the position where parsing stopped.
func (r *Renderer) RenderInput(line string, res interpreter.Result) string {
	out := r.Render(res)
	var perr *cql.ParseError
	if line == "" || !errors.As(res.Err, &perr) {
		return out
	}
	pos := min(max(perr.Pos, 0), len(line))
	return out + "\n" +
		indent + line + "\n" +
		indent + strings.Repeat(" ", lipgloss.Width(line[:pos])) + r.errText.Render("^")
}

// table renders rows under headers; numeric columns are right-aligned.
func (r *Renderer) table(headers []string, rows [][]string, numeric ...int) string {
	isNumeric := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		isNumeric[c] = true
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.header
			case isNumeric[col]:
				return r.number
			default:
				return r.cell
			}
		})
	return t.String()
}

// Listens formats a listen count with thousands separators.
func Listens(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
	return humanize.Comma(int64(n))
}

// Banner is printed when the REPL starts.
func Banner(version string) string {
	return "playcount " + version + "\n" +
		"Track what you listen to. Type 'help' for commands, 'quit' or Ctrl+D to leave.\n"
}
