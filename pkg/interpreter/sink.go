package interpreter

import (
	"io"
	"strings"
)

// Sink receives the lines produced by out statements.
type Sink interface {
	WriteLine(line string) error
}

// WriterSink writes each line followed by a newline to W.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) WriteLine(line string) error {
	_, err := io.WriteString(s.W, line+"\n")
	return err
}

// LineBuffer keeps emitted lines in memory.
type LineBuffer struct {
	lines []string
}

func (b *LineBuffer) WriteLine(line string) error {
	b.lines = append(b.lines, line)
	return nil
}

// Lines returns the lines written so far.
func (b *LineBuffer) Lines() []string { return b.lines }

// String joins the lines the way a WriterSink would have written them.
func (b *LineBuffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
