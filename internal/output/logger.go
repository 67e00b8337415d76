// Package output provides the colored status writer used by the shell and
// its subcommands.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/taigrr/colorhash"
)

// entryPalette holds the colors a directory name can be tinted with.
var entryPalette = []color.Attribute{
	color.FgBlue,
	color.FgCyan,
	color.FgMagenta,
	color.FgGreen,
	color.FgYellow,
	color.FgHiBlue,
	color.FgHiCyan,
	color.FgHiMagenta,
}

// Logger writes human-readable status lines.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
	verbose bool
}

// NewLogger creates a Logger writing to stdout and stderr.
func NewLogger() *Logger {
	return &Logger{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// NewWriterLogger creates a Logger that sends every line, errors included,
// to w.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{out: w, errOut: w}
}

// SetNoColor disables colored output for this logger.
func (l *Logger) SetNoColor(noColor bool) {
	l.noColor = noColor
}

// SetVerbose enables Debug output.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// Writer returns the destination of regular output.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func (l *Logger) paint(w io.Writer, attrs []color.Attribute, format string, args ...interface{}) {
	c := color.New(attrs...)
	if l.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	c.Fprintf(w, format, args...)
}

// Info prints an informational message in the default color.
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Success prints a message in green.
func (l *Logger) Success(format string, args ...interface{}) {
	l.paint(l.out, []color.Attribute{color.FgGreen}, format+"\n", args...)
}

// Warn prints a message in yellow.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.paint(l.errOut, []color.Attribute{color.FgYellow}, format+"\n", args...)
}

// Error prints a message in red.
func (l *Logger) Error(format string, args ...interface{}) {
	l.paint(l.errOut, []color.Attribute{color.FgRed}, format+"\n", args...)
}

// Debug prints a message in gray when verbose output is on.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.paint(l.errOut, []color.Attribute{color.FgHiBlack}, "[DEBUG] "+format+"\n", args...)
}

// Entry prints one listing line. Directories are bold and tinted with a
// color derived from their name, so the same name always looks the same.
func (l *Logger) Entry(text string, dir bool) {
	if !dir {
		fmt.Fprintln(l.out, text)
		return
	}
	l.paint(l.out, []color.Attribute{color.Bold, EntryColor(text)}, "%s\n", text)
}

// EntryColor picks the palette color for name.
func EntryColor(name string) color.Attribute {
	h := int(colorhash.HashString(name))
	if h < 0 {
		h = -h
	}
	return entryPalette[h%len(entryPalette)]
}
