package listing

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Style int

const (
	StylePlain Style = iota
	StyleColored
)

type tablePrinter struct {
	w       io.Writer
	t       table.Writer
	decoded int
	failed  int
}

// NewTable collects entries and writes them as one table on Flush.
func NewTable(w io.Writer, style Style) Printer {
	t := table.NewWriter()
	switch style {
	case StyleColored:
		t.SetStyle(table.StyleColoredDark)
	default:
		t.SetStyle(table.StyleLight)
	}
	t.AppendHeader(table.Row{"Offset", "Bytes", "Instruction"})
	return &tablePrinter{w: w, t: t}
}

func (p *tablePrinter) Print(e Entry) error {
	if e.Err != nil {
		p.failed++
	} else {
		p.decoded++
	}
	p.t.AppendRow(table.Row{
		fmt.Sprintf("%04x", e.Offset),
		fmt.Sprintf("% x", e.Raw),
		e.Text(),
	})
	return nil
}

func (p *tablePrinter) Flush() error {
	p.t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("decoded %d", p.decoded),
		fmt.Sprintf("failed %d", p.failed),
	})
	_, err := fmt.Fprintln(p.w, p.t.Render())
	return err
}
