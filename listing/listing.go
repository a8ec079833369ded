// Package listing prints decoded instructions.
package listing

import (
	"fmt"

	"github.com/artemijrodionov/sim8086/inst"
)

// Entry is one decode attempt: the instruction or the error it produced,
// together with where it started and the bytes it consumed.
type Entry struct {
	Offset int
	Raw    []byte
	Inst   inst.Instruction
	Err    error
}

// Text is what a listing shows for the entry: the instruction, or a
// diagnostic naming the failure.
func (e Entry) Text() string {
	if e.Err != nil {
		return fmt.Sprintf("error at 0x%04x: %v", e.Offset, e.Err)
	}
	return e.Inst.String()
}

type Printer interface {
	Print(e Entry) error
	Flush() error
}
