package inst

import "fmt"

const mnemonicMov = "mov"

// Instruction is a decoded instruction with its operands in destination,
// source order.
type Instruction struct {
	Mnemonic string
	Operands [2]Operand
}

func newMov(dst, src Operand) Instruction {
	return Instruction{Mnemonic: mnemonicMov, Operands: [2]Operand{dst, src}}
}

// Dst and Src return the operands by role.
func (i Instruction) Dst() Operand { return i.Operands[0] }
func (i Instruction) Src() Operand { return i.Operands[1] }

func (i Instruction) String() string {
	return fmt.Sprintf("%s %s, %s", i.Mnemonic, i.Operands[0], i.Operands[1])
}
