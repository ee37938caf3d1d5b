package cpu

import "mosey/mask"

// Status holds the seven flags of the processor status register (aka the P
// register) as independent booleans. The packed byte layout only matters when
// the register crosses the stack boundary (PHP/PLP, BRK/RTI), so flags live
// as booleans and are converted at that boundary.
//
// 7654 3210
// NV1B DIZC
//
// https://www.nesdev.org/wiki/Status_flags#Flags
type Status struct {
	Carry            bool // bit 0
	Zero             bool // bit 1
	InterruptDisable bool // bit 2
	DecimalMode      bool // bit 3; recognised but arithmetic in this mode is not supported
	BreakCommand     bool // bit 4; a software convention, copied verbatim through the stack
	Overflow         bool // bit 6; only meaningful for signed arithmetic
	Negative         bool // bit 7
}

// Bit 5 has no flag behind it; it reads as 1 whenever the register is pushed.
const unusedBit = 5

// Pack converts the status record to its single-byte stack representation.
// The unused bit is always 1.
func (s Status) Pack() byte {
	var b byte
	b = mask.Put(b, 0, s.Carry)
	b = mask.Put(b, 1, s.Zero)
	b = mask.Put(b, 2, s.InterruptDisable)
	b = mask.Put(b, 3, s.DecimalMode)
	b = mask.Put(b, 4, s.BreakCommand)
	b = mask.Put(b, unusedBit, true)
	b = mask.Put(b, 6, s.Overflow)
	b = mask.Put(b, 7, s.Negative)
	return b
}

// Unpack replaces every flag with the corresponding bit of b. The unused bit
// is ignored; BreakCommand is copied as-is (hardware distinguishes B by which
// vector is taken, but for pulling a pushed register the plain copy is
// sufficient).
func Unpack(b byte) Status {
	w := uint16(b)
	return Status{
		Carry:            mask.Bit(w, 0),
		Zero:             mask.Bit(w, 1),
		InterruptDisable: mask.Bit(w, 2),
		DecimalMode:      mask.Bit(w, 3),
		BreakCommand:     mask.Bit(w, 4),
		Overflow:         mask.Bit(w, 6),
		Negative:         mask.Bit(w, 7),
	}
}

// Or merges another status into this one: every flag set in o becomes set in
// s, no flag is cleared.
func (s *Status) Or(o Status) {
	s.Carry = s.Carry || o.Carry
	s.Zero = s.Zero || o.Zero
	s.InterruptDisable = s.InterruptDisable || o.InterruptDisable
	s.DecimalMode = s.DecimalMode || o.DecimalMode
	s.BreakCommand = s.BreakCommand || o.BreakCommand
	s.Overflow = s.Overflow || o.Overflow
	s.Negative = s.Negative || o.Negative
}
