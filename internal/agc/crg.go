package agc

// CRG holds the central registers: A and Q are 16-bit accumulator/
// auxiliary registers, Z is the 12-bit program counter, LP is the 16-bit
// "lower product"/editing register. All four are driven purely by read/
// write control pulses; Z has no hidden increment -- ZP1 is an explicit
// pulse, just like any other write.
type CRG struct {
	A, Q, LP *Register
	Z        *Register
}

func NewCRG() *CRG {
	return &CRG{
		A:  NewRegister(16),
		Q:  NewRegister(16),
		LP: NewRegister(16),
		Z:  NewRegister(12),
	}
}

func (c *CRG) Commit() {
	c.A.Commit()
	c.Q.Commit()
	c.LP.Commit()
	c.Z.Commit()
}

func (c *CRG) Reset() {
	c.A.Clear()
	c.Q.Clear()
	c.LP.Clear()
	c.Z.Clear()
}
