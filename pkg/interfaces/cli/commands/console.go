package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vsinha/inventory/pkg/application/services"
)

// Console is the line-oriented presentation layer: it reads answers and prints
// styled messages. It implements services.Confirmer and services.Notifier.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	closed  bool

	prompt  lipgloss.Style
	errText lipgloss.Style
	info    lipgloss.Style
	subtle  lipgloss.Style
	title   lipgloss.Style
}

var (
	_ services.Confirmer = (*Console)(nil)
	_ services.Notifier  = (*Console)(nil)
)

// NewConsole creates a console over in and out. Colors are only used when out is a terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	renderer := lipgloss.NewRenderer(out)
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  renderer.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		errText: renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		info:    renderer.NewStyle().Foreground(lipgloss.Color("10")),
		subtle:  renderer.NewStyle().Foreground(lipgloss.Color("8")),
		title:   renderer.NewStyle().Bold(true).Underline(true),
	}
}

// ReadLine prints prompt and returns the next input line; ok is false at end of input
func (c *Console) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, c.prompt.Render(prompt))
	if c.closed || !c.scanner.Scan() {
		c.closed = true
		fmt.Fprintln(c.out)
		return "", false
	}
	return c.scanner.Text(), true
}

// Closed reports whether input has been exhausted
func (c *Console) Closed() bool {
	return c.closed
}

// Confirm asks "Are you sure you want to <action>?" and accepts y or yes
func (c *Console) Confirm(action string) bool {
	answer, ok := c.ReadLine(fmt.Sprintf("Are you sure you want to %s? [y/N] ", action))
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Notify prints msg; errors are highlighted
func (c *Console) Notify(msg services.Message) {
	if msg.IsError {
		fmt.Fprintln(c.out, c.errText.Render("Error: "+msg.Title))
	} else {
		fmt.Fprintln(c.out, c.info.Render(msg.Title))
	}
	if msg.Body != "" {
		fmt.Fprintln(c.out, "  "+msg.Body)
	}
}

// Printf writes unstyled text
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Title writes a heading line
func (c *Console) Title(text string) {
	fmt.Fprintln(c.out, c.title.Render(text))
}

// Hint writes a de-emphasized line
func (c *Console) Hint(text string) {
	fmt.Fprintln(c.out, c.subtle.Render(text))
}

// Writer exposes the output stream for table rendering
func (c *Console) Writer() io.Writer {
	return c.out
}
