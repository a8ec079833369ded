package inst

// regString is ordered so that a register code indexes the byte half and
// code+8 indexes the word half.
var regString = [16]string{
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
}

// RegisterName returns the canonical name of the register encoded by the low
// three bits of code. Wide selects the 16-bit register set.
func RegisterName(code byte, wide bool) string {
	return regEncoding{register(code & 0x7), sizeOf(wide)}.String()
}

type regEncoding struct {
	register
	opSize
}

func (r regEncoding) String() string {
	return regString[int(r.register)+8*int(r.opSize)]
}

func sizeOf(wide bool) opSize {
	if wide {
		return opWord
	}
	return opByte
}
