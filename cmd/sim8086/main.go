package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/artemijrodionov/sim8086/inst"
	"github.com/artemijrodionov/sim8086/listing"
	"github.com/artemijrodionov/sim8086/octet"
)

var (
	objPath = flag.String("objPath", "", "Unix path to a binary file compiled with nasm")
	asTable = flag.Bool("table", false, "Print a table with offsets and raw bytes")
	verbose = flag.Bool("verbose", false, "Trace every decoded byte to stderr")
	logJSON = flag.Bool("logJSON", false, "Write logs as JSON")
)

func isObjFile(filename string) bool {
	return filename != "" && !strings.HasSuffix(filename, ".asm")
}

type Config struct {
	ObjPath string
	Table   bool
	Colored bool
}

type Cli struct {
	cfg  Config
	file *os.File
}

func NewCli(cfg Config) (*Cli, error) {
	if !isObjFile(cfg.ObjPath) {
		return nil, errors.New("Executable file name is not valid")
	}
	return &Cli{cfg: cfg}, nil
}

// Run decodes the object file into out until the input is exhausted.
// Unsupported opcodes are reported and skipped; a truncated instruction is
// reported and ends the listing.
func (c *Cli) Run(out io.Writer) error {
	file, err := os.Open(c.cfg.ObjPath)
	if err != nil {
		return err
	}
	c.file = file
	defer c.Close()

	src := octet.New(file)
	printer := c.printer(out)

	for {
		instruction, err := inst.Decode(src)
		if errors.Is(err, io.EOF) {
			break
		}

		offset, raw := src.Consume()
		if err != nil && !isDecodeError(err) {
			return fmt.Errorf("decode at 0x%04x: %w", offset, err)
		}
		if err != nil {
			slog.Debug("decode failed", "offset", offset, "err", err)
		}

		if perr := printer.Print(listing.Entry{Offset: offset, Raw: raw, Inst: instruction, Err: err}); perr != nil {
			return perr
		}
		if errors.Is(err, inst.ErrUnexpectedEndOfStream) {
			break
		}
	}

	return printer.Flush()
}

// Close releases the object file. It is safe to call more than once.
func (c *Cli) Close() {
	if c.file == nil {
		return
	}
	c.file.Close()
	c.file = nil
}

func (c *Cli) printer(out io.Writer) listing.Printer {
	if !c.cfg.Table {
		return listing.NewText(out)
	}
	if c.cfg.Colored {
		return listing.NewTable(out, listing.StyleColored)
	}
	return listing.NewTable(out, listing.StylePlain)
}

func isDecodeError(err error) bool {
	return errors.Is(err, inst.ErrUnsupportedOpcode) || errors.Is(err, inst.ErrUnexpectedEndOfStream)
}

func setupLogger(w io.Writer, verbose, asJSON bool) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = inst.LevelTrace
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	flag.Parse()
	setupLogger(os.Stderr, *verbose, *logJSON)

	cli, err := NewCli(Config{
		ObjPath: *objPath,
		Table:   *asTable,
		Colored: term.IsTerminal(int(os.Stdout.Fd())),
	})
	if err != nil {
		flag.Usage()
		atexit.Fatal(err)
	}
	atexit.Register(cli.Close)

	if err := cli.Run(os.Stdout); err != nil {
		atexit.Fatal(err)
	}
	atexit.Exit(0)
}
