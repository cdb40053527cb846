package agc

// ALU is the arithmetic unit: X and Y are the operand latches, B
// holds the pre-fetched next instruction, U is the combinational result,
// and CI is the carry-in gate ("+1 via CI"). Block I is ones-complement,
// so addition uses end-around carry: a carry out of bit 16 wraps back
// into bit 1 rather than being discarded.
type ALU struct {
	X, Y, U, B *Register
	CI         *Register

	// gates collected during Phase B by the pulses named in pulses.go;
	// cleared by the CLK dispatcher at the start of every TP.
	gateX, gateXC, gateY, gateYC, gateCI bool

	overflow bool // set by the most recent Compute; read by the TOV pulse
}

func NewALU() *ALU {
	return &ALU{
		X:  NewRegister(16),
		Y:  NewRegister(16),
		U:  NewRegister(16),
		B:  NewRegister(16),
		CI: NewRegister(1),
	}
}

// ResetGates clears the ALU's input gate flags; called once per TP before
// Phase B pulses run.
func (a *ALU) ResetGates() {
	a.gateX, a.gateXC, a.gateY, a.gateYC, a.gateCI = false, false, false, false, false
}

func (a *ALU) GateX()  { a.gateX = true }
func (a *ALU) GateXC() { a.gateXC = true }
func (a *ALU) GateY()  { a.gateY = true }
func (a *ALU) GateYC() { a.gateYC = true }
func (a *ALU) GateCI() { a.gateCI = true }

// Compute combines the enabled operands into U with ones-complement
// end-around carry. It stages U's shadow (visible after Commit)
// and records the overflow test the TOV pulse consumes this same TP --
// TOV reads Compute's side effect rather than re-deriving it, since the
// operand values used for the test only exist as locals here.
func (a *ALU) Compute() uint16 {
	var opX, opY uint16
	switch {
	case a.gateX:
		opX = a.X.Read()
	case a.gateXC:
		opX = ^a.X.Read() & 0xFFFF
	}
	switch {
	case a.gateY:
		opY = a.Y.Read()
	case a.gateYC:
		opY = ^a.Y.Read() & 0xFFFF
	}
	var carryIn uint32
	if a.gateCI {
		carryIn = 1
	}

	sum := uint32(opX) + uint32(opY) + carryIn
	if sum > 0xFFFF {
		sum = (sum & 0xFFFF) + 1 // end-around carry
	}
	u := uint16(sum & 0xFFFF)

	signX, signY, signU := opX&0x8000, opY&0x8000, u&0x8000
	a.overflow = signX == signY && signU != signX

	a.U.Write(u)
	return u
}

// Overflow reports the sign-based overflow test from the most recent
// Compute; end-around carry and overflow detection set BR1/BR2.
func (a *ALU) Overflow() bool { return a.overflow }

func (a *ALU) Commit() {
	a.X.Commit()
	a.Y.Commit()
	a.U.Commit()
	a.B.Commit()
	a.CI.Commit()
}

func (a *ALU) Reset() {
	a.X.Clear()
	a.Y.Clear()
	a.U.Clear()
	a.B.Clear()
	a.CI.Clear()
	a.ResetGates()
	a.overflow = false
}
