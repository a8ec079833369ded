package inst

type opDirection byte
type opSize byte
type modeOffset byte
type register byte

const (
	opSrc opDirection = 0x0
	opDst opDirection = 0x1

	opByte opSize = 0x0
	opWord opSize = 0x1

	memOffset0  modeOffset = 0x0
	memOffset8  modeOffset = 0x1
	memOffset16 modeOffset = 0x2
	regOffset0  modeOffset = 0x3

	alax register = 0x0
	clcx register = 0x1
	dldx register = 0x2
	blbx register = 0x3
	ahsp register = 0x4
	chbp register = 0x5
	dhsi register = 0x6
	bhdi register = 0x7
)

// opcode is the leading byte of an instruction.
type opcode byte

// D reports whether the reg field of the mode byte names the destination.
func (o opcode) D() opDirection {
	return opDirection((o >> 1) & 1)
}

// W is the operand size of a reg/rm encoded instruction.
func (o opcode) W() opSize {
	return opSize(o & 1)
}

// immW and immReg read the fields packed into an immediate-to-register opcode.
func (o opcode) immW() opSize {
	return opSize((o >> 3) & 1)
}

func (o opcode) immReg() register {
	return register(o & 0x7)
}

// modRM is the byte following a reg/rm encoded opcode.
type modRM byte

func (m modRM) Mod() modeOffset {
	return modeOffset(m >> 6)
}

func (m modRM) Reg() register {
	return register((m >> 3) & 0x7)
}

func (m modRM) RM() register {
	return register(m & 0x7)
}

// isDirectAddress reports the mod=00 r/m=110 case, which carries a 16-bit
// address instead of a bp base.
func isDirectAddress(m modeOffset, r register) bool {
	return m == memOffset0 && r == dhsi
}

// displacementSize is the number of displacement bytes that follow the mode byte.
func displacementSize(m modeOffset, r register) int {
	switch {
	case m == memOffset8:
		return 1
	case m == memOffset16, isDirectAddress(m, r):
		return 2
	default:
		return 0
	}
}
