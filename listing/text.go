package listing

import (
	"fmt"
	"io"
)

type textPrinter struct {
	w io.Writer
}

// NewText prints one line per entry as it arrives. Failures become nasm
// comments so the output still assembles.
func NewText(w io.Writer) Printer {
	return &textPrinter{w: w}
}

func (p *textPrinter) Print(e Entry) error {
	if e.Err != nil {
		_, err := fmt.Fprintf(p.w, "; %s\n", e.Text())
		return err
	}
	_, err := fmt.Fprintln(p.w, e.Text())
	return err
}

func (p *textPrinter) Flush() error {
	return nil
}
