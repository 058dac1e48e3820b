// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// NewFor creates a Writer on out and err, enabling color when out is a
// terminal and NO_COLOR is unset.
func NewFor(out, err io.Writer) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: IsTerminal(out) && os.Getenv("NO_COLOR") == "",
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Out returns the stdout writer.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...any) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Value prints a resolved value on its own line. Empty values print
// nothing, so callers can pipe the output straight into other tools.
func (w *Writer) Value(v string) {
	if v == "" {
		return
	}
	fmt.Fprintln(w.out, v)
}

// Success prints a success message.
func (w *Writer) Success(format string, args ...any) {
	w.Println("%s", w.style(successStyle, fmt.Sprintf(format, args...)))
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...any) {
	w.Errorln("%s", w.style(warningStyle, "warning: "+fmt.Sprintf(format, args...)))
}

// ErrorPrefix prints an error message with the msyskit prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...any) {
	w.Errorln("%s %s", w.style(errorStyle, "msyskit:"), fmt.Sprintf(format, args...))
}

// Hint prints a dimmed hint line (skipped in quiet mode).
func (w *Writer) Hint(format string, args ...any) {
	if w.quiet {
		return
	}
	w.Println("%s", w.style(dimStyle, fmt.Sprintf(format, args...)))
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var headerParts []string
	for i, h := range headers {
		headerParts = append(headerParts, w.style(headerStyle, fmt.Sprintf("%-*s", widths[i], h)))
	}
	w.Println("%s", strings.TrimRight(strings.Join(headerParts, "  "), " "))

	var sepParts []string
	for i, width := range widths {
		rule := "-"
		if headers[i] == "" {
			rule = " "
		}
		sepParts = append(sepParts, strings.Repeat(rule, width))
	}
	w.Println("%s", strings.TrimRight(strings.Join(sepParts, "  "), " "))

	for _, row := range rows {
		var rowParts []string
		for i, cell := range row {
			if i < len(widths) {
				rowParts = append(rowParts, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		w.Println("%s", strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}

// style renders s with st when color is enabled.
func (w *Writer) style(st lipgloss.Style, s string) string {
	if !w.color {
		return s
	}
	return st.Render(s)
}

// IsTerminal reports whether w is a character device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if fi, _ := f.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
