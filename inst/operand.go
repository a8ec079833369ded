package inst

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is one of Register, Immediate or AddressCalculation.
type Operand interface {
	fmt.Stringer
	isOperand()
}

// Register is a general purpose register operand.
type Register struct {
	Code byte
	Wide bool
}

func NewRegister(code byte, wide bool) Register {
	return Register{Code: code & 0x7, Wide: wide}
}

func (r Register) String() string {
	return RegisterName(r.Code, r.Wide)
}

func (Register) isOperand() {}

// Immediate is a literal value carried in the instruction stream.
type Immediate uint16

func NewImmediate(value uint16) Immediate {
	return Immediate(value)
}

func (i Immediate) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func (Immediate) isOperand() {}

// AddressCalculation is a memory operand: the sum of up to two registers and
// a displacement. A zero Displacement is not part of the sum.
type AddressCalculation struct {
	Terms        []Register
	Displacement uint16
}

func NewAddressCalculation(disp uint16, terms ...Register) AddressCalculation {
	return AddressCalculation{Terms: terms, Displacement: disp}
}

// effectiveAddress builds the memory operand selected by a non-register mode.
func effectiveAddress(m modeOffset, rm register, disp uint16) AddressCalculation {
	if isDirectAddress(m, rm) {
		return NewAddressCalculation(disp)
	}

	codes := effAddrEncoding[rm]
	terms := make([]Register, 0, len(codes))
	for _, c := range codes {
		terms = append(terms, NewRegister(byte(c), true))
	}
	return NewAddressCalculation(disp, terms...)
}

// String renders the operand as "[bx + si + 4]". An empty calculation is the
// direct address zero and renders as "[0]".
func (a AddressCalculation) String() string {
	parts := make([]string, 0, len(a.Terms)+1)
	for _, t := range a.Terms {
		parts = append(parts, t.String())
	}
	if a.Displacement != 0 || len(parts) == 0 {
		parts = append(parts, strconv.FormatUint(uint64(a.Displacement), 10))
	}
	return "[" + strings.Join(parts, " + ") + "]"
}

func (AddressCalculation) isOperand() {}
