package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Status prefixes shared by every report.
const (
	IconSuccess = "✅"
	IconFailure = "❌"
	IconWarning = "⚠️ "
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
// Styles only emit escape codes when isTTY is set and the mode is text.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	r := &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}

	lr := lipgloss.NewRenderer(out)
	if !isTTY || r.EffectiveMode() != ModeText {
		lr.SetColorProfile(termenv.Ascii)
	}
	r.styles = NewStyles(lr)
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Mode returns the requested mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// EffectiveMode resolves ModeAuto against the terminal state.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether stdout is a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the stdout writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the stderr writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a heading: styled in text mode, "#" prefixed otherwise.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeText {
		style := r.styles.Header2
		if level <= 1 {
			style = r.styles.Header1
		}
		r.Println(style.Render(text))
		return
	}
	r.Println(FormatHeader(level, text))
}

// Success writes a checkmark-prefixed line to stdout.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(IconSuccess + " " + msg))
}

// Failure writes a cross-prefixed line to stdout.
func (r *Renderer) Failure(msg string) {
	r.Println(r.styles.Error.Render(IconFailure + " " + msg))
}

// Warning writes a warning-prefixed line to stdout.
func (r *Renderer) Warning(msg string) {
	r.Println(r.styles.Warning.Render(IconWarning + " " + msg))
}

// Error writes "❌ Error: msg" to stdout. Fatal errors go to stdout so CI
// logs that only capture stdout still show them.
func (r *Renderer) Error(msg string) {
	r.Println(r.styles.Error.Render(IconFailure + " Error: " + msg))
}

// NumberedList writes "1. item" lines.
func (r *Renderer) NumberedList(items []string) {
	for i, item := range items {
		r.Printf("%d. %s\n", i+1, item)
	}
}

// JSON writes v as indented JSON to stdout.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FormatHeader returns a Markdown heading line.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a Markdown "- **key:** value" line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}
