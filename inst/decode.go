package inst

import (
	"errors"
	"fmt"
	"io"
)

// ByteSource yields the instruction stream one octet at a time. It returns
// io.EOF once the stream is exhausted.
type ByteSource interface {
	ReadByte() (byte, error)
}

const (
	movRegRM  opcode = 0b100010 // 100010dw
	movImmReg opcode = 0b1011   // 1011wreg
)

type decodeFunc func(opcode, ByteSource) (Instruction, error)

// Decode reads one instruction from src. An io.EOF before the first byte is
// returned as is and marks the regular end of the stream.
func Decode(src ByteSource) (Instruction, error) {
	b, err := src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Instruction{}, io.EOF
		}
		return Instruction{}, fmt.Errorf("read opcode: %w", err)
	}

	op := opcode(b)
	Trace("opcode", "bits", fmt.Sprintf("%08b", b))

	decode, err := classify(op)
	if err != nil {
		return Instruction{}, err
	}
	return decode(op, src)
}

// classify picks the decoder for the leading byte. The first pattern that
// matches wins.
func classify(op opcode) (decodeFunc, error) {
	switch {
	case op>>2 == movRegRM:
		Trace("classify", "form", "reg/rm")
		return decodeRegRM, nil
	case op>>4 == movImmReg:
		Trace("classify", "form", "immediate to register")
		return decodeImmToReg, nil
	default:
		return nil, fmt.Errorf("%w: opcode %08b", ErrUnsupportedOpcode, byte(op))
	}
}

func decodeRegRM(op opcode, src ByteSource) (Instruction, error) {
	b, err := next(src, "mode byte")
	if err != nil {
		return Instruction{}, err
	}
	m := modRM(b)
	wide := op.W() == opWord

	var disp uint16
	switch displacementSize(m.Mod(), m.RM()) {
	case 1:
		if disp, err = readValue(src, false, "displacement"); err != nil {
			return Instruction{}, err
		}
	case 2:
		if disp, err = readValue(src, true, "displacement"); err != nil {
			return Instruction{}, err
		}
	}

	var rm Operand
	if m.Mod() == regOffset0 {
		rm = NewRegister(byte(m.RM()), wide)
	} else {
		rm = effectiveAddress(m.Mod(), m.RM(), disp)
	}
	reg := NewRegister(byte(m.Reg()), wide)

	if op.D() == opDst {
		return newMov(reg, rm), nil
	}
	return newMov(rm, reg), nil
}

func decodeImmToReg(op opcode, src ByteSource) (Instruction, error) {
	wide := op.immW() == opWord
	dst := NewRegister(byte(op.immReg()), wide)

	data, err := readValue(src, wide, "data")
	if err != nil {
		return Instruction{}, err
	}
	return newMov(dst, NewImmediate(data)), nil
}

// readValue reads one byte, or a little-endian word when wide. A single byte
// keeps its unsigned value.
func readValue(src ByteSource, wide bool, field string) (uint16, error) {
	lo, err := next(src, field)
	if err != nil {
		return 0, err
	}
	if !wide {
		return uint16(lo), nil
	}

	hi, err := next(src, field+" high byte")
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func next(src ByteSource, field string) (byte, error) {
	b, err := src.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return 0, fmt.Errorf("%w: missing %s", ErrUnexpectedEndOfStream, field)
	case err != nil:
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	return b, nil
}
