// SPDX-License-Identifier: MIT

// Package presentation renders solver results for the terminal.
package presentation

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/history"
	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/internal/input"
	"github.com/katalvlaran/linsolve/internal/session"
)

const timeLayout = "2006-01-02 15:04"

// Printer renders to one writer in one language. Colors follow the writer's
// terminal capabilities.
type Printer struct {
	w   io.Writer
	cat *i18n.Catalog
	st  styles
}

// New returns a Printer writing to w.
func New(w io.Writer, cat *i18n.Catalog) *Printer {
	return &Printer{w: w, cat: cat, st: newStyles(lipgloss.NewRenderer(w))}
}

// FormatNumber prints v without trailing zeros; NaN and ±Inf are spelled out.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatVector joins the components of x with spaces.
func FormatVector(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = FormatNumber(v)
	}

	return strings.Join(parts, " ")
}

// Solution writes "x1 = ..." lines in a box, with the method and any warning.
func (p *Printer) Solution(out session.Outcome) error {
	var b strings.Builder
	b.WriteString(p.st.title.Render(p.cat.Label(i18n.LabelSolution)))
	b.WriteString("\n")
	for i, v := range out.Solution {
		fmt.Fprintf(&b, "x%d = %s\n", i+1, p.st.answer.Render(FormatNumber(v)))
	}
	b.WriteString(p.st.label.Render(p.cat.Label(i18n.LabelMethod) + ": "))
	b.WriteString(p.st.value.Render(p.cat.MethodName(out.Method)))
	b.WriteString("\n")
	b.WriteString(p.st.label.Render(p.cat.Label(i18n.LabelRounding) + ": "))
	b.WriteString(p.st.value.Render(strconv.Itoa(out.Rounding)))

	if _, err := fmt.Fprintln(p.w, p.st.box.Render(b.String())); err != nil {
		return err
	}
	if out.Warning != "" {
		_, err := fmt.Fprintln(p.w, p.st.warning.Render(out.Warning))
		return err
	}

	return nil
}

// System echoes the parsed coefficients and constants.
func (p *Printer) System(sys input.System) error {
	var b strings.Builder
	b.WriteString(p.st.label.Render(p.cat.Label(i18n.LabelCoefficients) + ":"))
	b.WriteString("\n")
	for _, row := range sys.A {
		b.WriteString("  " + FormatVector(row) + "\n")
	}
	b.WriteString(p.st.label.Render(p.cat.Label(i18n.LabelConstants) + ":"))
	b.WriteString(" " + FormatVector(sys.B))
	_, err := fmt.Fprintln(p.w, b.String())

	return err
}

// Failure writes a localized error and, for user errors, the retry hint.
func (p *Printer) Failure(err error) error {
	title := p.st.err.Render(p.cat.Message(i18n.KeyError) + ":")
	var ue *session.UserError
	if errors.As(err, &ue) {
		_, werr := fmt.Fprintf(p.w, "%s %s\n%s\n", title, ue.Message, p.st.hint.Render(ue.Hint))
		return werr
	}
	_, werr := fmt.Fprintf(p.w, "%s %v\n", title, err)

	return werr
}

// History lists recorded solutions, newest first as given.
func (p *Printer) History(entries []history.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(p.w, p.st.label.Render(p.cat.Label(i18n.LabelHistoryEmpty)))
		return err
	}
	var b strings.Builder
	b.WriteString(p.st.title.Render(p.cat.Label(i18n.LabelHistory)))
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s  %-16s  [%s]  %s",
			p.st.label.Render(e.CreatedAt.Local().Format(timeLayout)),
			p.cat.MethodName(e.Method),
			FormatVector(e.Solution),
			p.st.label.Render(e.ID.String()[:8]),
		)
	}
	_, err := fmt.Fprintln(p.w, p.st.box.Render(b.String()))

	return err
}

// Settings writes every setting as "key = value".
func (p *Printer) Settings(s config.Settings) error {
	var b strings.Builder
	for i, k := range config.Keys() {
		v, err := s.Get(k)
		if err != nil {
			return err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.st.label.Render(k) + " = " + p.st.value.Render(v))
	}
	_, err := fmt.Fprintln(p.w, b.String())

	return err
}

// Notice writes a plain localized message such as "settings saved".
func (p *Printer) Notice(key string) error {
	_, err := fmt.Fprintln(p.w, p.cat.Message(key))
	return err
}
