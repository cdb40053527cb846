package agc

import "fmt"

// Width is the bit width of a Register, matching the flip-flop counts R-393
// assigns each AGC4 register (LP and A are 16 bits, Z is 12, G15 is 1, etc).
type Width uint8

// mask returns the bitmask for w bits.
func (w Width) mask() uint16 {
	if w >= 16 {
		return 0xFFFF
	}
	return (uint16(1) << w) - 1
}

// Register is the universal bit-width container: a committed value and
// a shadow "next value". Writes within a time pulse land in the shadow;
// Commit sweeps shadow into committed at the TP boundary. Reads always
// return the value committed at the previous boundary, which is what
// makes intra-TP read-after-write impossible.
type Register struct {
	width     Width
	committed uint16
	next      uint16
	dirty     bool
}

// NewRegister constructs a Register of the given width. Block I widths are
// one of {1,3,4,5,7,8,10,12,14,15,16}; anything else is a programmer error.
func NewRegister(w Width) *Register {
	switch w {
	case 1, 3, 4, 5, 7, 8, 10, 12, 14, 15, 16:
	default:
		panic(fmt.Sprintf("agc: invalid register width %d", w))
	}
	return &Register{width: w}
}

// Read returns the value committed at the prior TP boundary.
func (r *Register) Read() uint16 { return r.committed }

// Write stages v into the shadow slot, masked to the register's width. It
// is not visible via Read until Commit runs.
func (r *Register) Write(v uint16) {
	r.next = v & r.width.mask()
	r.dirty = true
}

// Commit promotes the shadow value to committed. Registers that were not
// written during the TP keep their committed value -- any write not
// explicitly cleared persists after commit, and there is nothing to
// clear because nothing was written.
func (r *Register) Commit() {
	if r.dirty {
		r.committed = r.next
		r.dirty = false
	}
}

// Clear forces both committed and shadow to zero, bypassing Commit. Used
// only by GENRST/PURST, which act directly on the hardware flip-flops
// rather than through a normal write pulse.
func (r *Register) Clear() {
	r.committed = 0
	r.next = 0
	r.dirty = false
}

// Set forces the committed value immediately (no shadow delay). Used for
// loading rope images and for register aliases wired through MEM, where
// the "write" already happened through the owning register's own pulse.
func (r *Register) Set(v uint16) {
	r.committed = v & r.width.mask()
	r.next = r.committed
	r.dirty = false
}
