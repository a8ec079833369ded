package inst

import "errors"

var (
	// ErrUnsupportedOpcode is returned when the leading byte matches no known
	// instruction. Only that byte has been consumed.
	ErrUnsupportedOpcode = errors.New("unsupported instruction")

	// ErrUnexpectedEndOfStream is returned when the source runs out in the
	// middle of an instruction. The bytes already read are not given back.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")
)
