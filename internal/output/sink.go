// Package output delivers generated passwords to their destination.
package output

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

var ErrClipboardUnavailable = errors.WithHint(
	errors.New("system clipboard is not available"),
	"Install xclip, xsel or wl-clipboard, or print to standard output instead.",
)

// Sink receives the final text to hand to the user.
type Sink interface {
	Deliver(text string) error
}

// WriterSink prints text followed by a newline.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink printing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Deliver(text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// ClipboardSink places text on the system clipboard.
type ClipboardSink struct {
	unsupported bool
	write       func(string) error
}

// NewClipboardSink creates a sink backed by the platform clipboard.
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

func (s *ClipboardSink) Deliver(text string) error {
	if s.unsupported {
		return ErrClipboardUnavailable
	}
	if err := s.write(text); err != nil {
		return errors.Wrap(err, "copying to clipboard")
	}
	return nil
}
