// Package ui provides the line-oriented terminal console.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrPromptPending is returned when Ask is called while an earlier prompt is
// still waiting for its line.
var ErrPromptPending = errors.New("another prompt is still pending")

// Styles holds the lipgloss styles applied to console messages.
type Styles struct {
	Title   lipgloss.Style
	Hint    lipgloss.Style
	Warn    lipgloss.Style
	Success lipgloss.Style
}

// DefaultStyles returns the styles used on a color terminal.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

// Option configures a Console.
type Option func(*Console)

// WithColor forces styled output on or off.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

type lineResult struct {
	line string
	err  error
}

// Console reads answers line by line and writes prompts and messages.
// At most one prompt is outstanding at a time.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	color  bool

	// held from the start of a read until its line arrives
	reading sync.Mutex
}

// NewConsole creates a console over in and out. Styling is enabled when out
// is a terminal and NO_COLOR is unset.
func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: DefaultStyles(),
		color:  IsTTY(out) && os.Getenv("NO_COLOR") == "",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ask writes question and waits for one line of input. The answer is
// trimmed. io.EOF is returned once input is exhausted. A canceled ctx is
// reported before any prompt is written. Cancellation during the wait leaves
// the pending read in place: until that line arrives every later Ask fails
// with ErrPromptPending, so a console canceled mid-prompt cannot be reused.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.reading.TryLock() {
		return "", ErrPromptPending
	}

	if _, err := io.WriteString(c.out, question); err != nil {
		c.reading.Unlock()
		return "", fmt.Errorf("write prompt: %w", err)
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		// release before delivering so the next Ask never sees a stale lock
		c.reading.Unlock()
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", r.err)
		}
		if errors.Is(r.err, io.EOF) && r.line == "" {
			return "", io.EOF
		}
		return strings.TrimSpace(r.line), nil
	}
}

// Println writes a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted plain text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Title writes a heading line.
func (c *Console) Title(msg string) {
	fmt.Fprintln(c.out, c.paint(c.styles.Title, msg))
}

// Hint writes a hint line.
func (c *Console) Hint(msg string) {
	fmt.Fprintln(c.out, c.paint(c.styles.Hint, msg))
}

// Warn writes a warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.paint(c.styles.Warn, msg))
}

// Success writes a success line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.paint(c.styles.Success, msg))
}

func (c *Console) paint(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
