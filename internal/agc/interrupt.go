package agc

// Interrupt vector indices. UPRUPT was eliminated per original_source's
// v1.12 log entry, leaving four sources latched into rupt[1..4]; index 0
// means "no interrupt granted".
const (
	RuptNone    = 0
	RuptT3RUPT  = 1
	RuptERRUPT  = 2
	RuptKEYRUPT = 3
	RuptDSRUPT  = 4
)

// NumRupts is the count of real interrupt vectors (excludes index 0).
const NumRupts = 4

// vectorEntryAddr is the fixed eraseable address each interrupt vector
// transfers control to, loaded into Z by the VECZ pulse. Addresses are
// this simulator's own convention (spaced by 4 words per vector,
// starting just past the register overlay) -- original_source does not
// name these locations explicitly enough to reproduce bit-for-bit.
var vectorEntryAddr = [NumRupts + 1]uint16{
	RuptNone:    0,
	RuptT3RUPT:  0o20,
	RuptERRUPT:  0o24,
	RuptKEYRUPT: 0o30,
	RuptDSRUPT:  0o34,
}

// INT is the interrupt priority subsystem: RPCELL holds the currently
// granted vector, INHINT/INHINT1 are the inhibit latches, rupt[1..4] are
// the request latches a source sets asynchronously, and ARUPT/QRUPT/
// BRUPT are the dedicated save locations RUPT1 copies A, Q and the
// branch test flip-flops into so RESUME can put them back.
type INT struct {
	Rupt    [NumRupts + 1]bool
	RPCELL  uint8
	INHINT  bool
	INHINT1 bool

	ARUPT *Register
	QRUPT *Register
	BRUPT *Register
}

func NewINT() *INT {
	return &INT{
		ARUPT: NewRegister(16),
		QRUPT: NewRegister(16),
		BRUPT: NewRegister(3),
	}
}

// Commit sweeps ARUPT/QRUPT/BRUPT's shadow writes into committed state,
// same as every other register-backed subsystem.
func (in *INT) Commit() {
	in.ARUPT.Commit()
	in.QRUPT.Commit()
	in.BRUPT.Commit()
}

// Request latches a pending interrupt for vector i (1..4).
func (in *INT) Request(i int) { in.Rupt[i] = true }

// Pending reports whether any vector has a latched, ungranted request.
func (in *INT) Pending() bool {
	for i := 1; i <= NumRupts; i++ {
		if in.Rupt[i] {
			return true
		}
	}
	return false
}

// SelectGrant priority-encodes the next interrupt to grant: lowest index
// first, and only when neither inhibit latch is set. ok is false if
// nothing can be granted right now.
func (in *INT) SelectGrant() (vector int, ok bool) {
	if in.INHINT || in.INHINT1 {
		return 0, false
	}
	for i := 1; i <= NumRupts; i++ {
		if in.Rupt[i] {
			return i, true
		}
	}
	return 0, false
}

// Grant commits the RPCELL and clears the request latch for vector.
func (in *INT) Grant(vector int) {
	in.RPCELL = uint8(vector)
	in.Rupt[vector] = false
}

// Resume clears RPCELL after a RESUME pulse restores the preempted state.
func (in *INT) Resume() { in.RPCELL = RuptNone }

func (in *INT) Reset() {
	in.Rupt = [NumRupts + 1]bool{}
	in.RPCELL = RuptNone
	in.INHINT = false
	in.INHINT1 = false
	in.ARUPT.Clear()
	in.QRUPT.Clear()
	in.BRUPT.Clear()
}
