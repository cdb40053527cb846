package agc

// Subsequence names one of the micro-sequences CPM's table is indexed by
// Subsequence names one of the micro-sequences CPM's table is indexed by.
// Block I's real instruction set decodes into dozens of these;
// this simulator implements the subset named in DESIGN.md's scope entry
// for cpm.go, not the full R-393 repertoire.
type Subsequence uint8

const (
	SeqNone Subsequence = iota
	SeqSTD1 // instruction fetch, shared by every opcode
	SeqTC0  // transfer control
	SeqCCS0 // count, compare and skip
	SeqCA1  // clear and add: fetch operand, move to A
	SeqCS1  // clear and subtract: fetch operand, complement through ALU into A
	SeqAD1  // add: fetch operand, add A through ALU, write back to A
	SeqTS1  // transfer to storage: A to the operand address
	SeqPINC
	SeqMINC
	SeqRUPT1
	SeqRUPT3
	SeqRSM3
	SeqGOJ1
	SeqMP0
	SeqMP1
	SeqMP3
	SeqDV0
	SeqDV1
	SeqDV3

	numSubsequences
)

var subsequenceNames = [numSubsequences]string{
	SeqNone: "NONE", SeqSTD1: "STD1",
	SeqTC0: "TC0", SeqCCS0: "CCS0",
	SeqCA1: "CA1", SeqCS1: "CS1", SeqAD1: "AD1", SeqTS1: "TS1",
	SeqPINC: "PINC", SeqMINC: "MINC",
	SeqRUPT1: "RUPT1", SeqRUPT3: "RUPT3", SeqRSM3: "RSM3", SeqGOJ1: "GOJ1",
	SeqMP0: "MP0", SeqMP1: "MP1", SeqMP3: "MP3",
	SeqDV0: "DV0", SeqDV1: "DV1", SeqDV3: "DV3",
}

func (s Subsequence) String() string {
	if int(s) < len(subsequenceNames) && subsequenceNames[s] != "" {
		return subsequenceNames[s]
	}
	return "????"
}

// opcode is the 3-bit order code occupying the top bits of an instruction
// word (see cpm.go's decode table). This is the simulator's own word
// convention -- see DESIGN.md -- not a claim about R-393's bit-exact
// instruction layout.
type opcode uint8

const (
	opTC     opcode = 0 // transfer control
	opCCS    opcode = 1 // count, compare, and skip
	opRESUME opcode = 2 // return from interrupt service (decodes to SeqRSM3)
	opCA     opcode = 3 // clear and add
	opCS     opcode = 4 // clear and subtract (CA with X complemented)
	opAD     opcode = 5 // add
	opMASK   opcode = 6 // bitwise AND (unimplemented -- see DecodeSubsequence)
	opTS     opcode = 7 // transfer to storage
)

const opcodeShift = 12 // instruction word bits [14:12] hold the opcode

// SEQ is the sequencer register set: SQ holds the decoded
// opcode, STA/STB count which stage of a multi-stage subsequence is
// active, BR1/BR2 latch the last branch-condition tests, SNI marks "this
// TP starts a new instruction", and LOOPCTR counts MP/DV iterations.
type SEQ struct {
	SQ      *Register
	STA     *Register
	STB     *Register
	BR1     *Register
	BR2     *Register
	SNI     *Register
	LOOPCTR *Register
}

func NewSEQ() *SEQ {
	s := &SEQ{
		SQ:      NewRegister(15), // holds the full fetched instruction word (3-bit opcode + 12-bit address)
		STA:     NewRegister(3),
		STB:     NewRegister(3),
		BR1:     NewRegister(1),
		BR2:     NewRegister(1),
		SNI:     NewRegister(1),
		LOOPCTR: NewRegister(5),
	}
	// Power-up has no prior subsequence to have fired SNIP, so decode
	// would otherwise read SQ's zero opcode as a bogus opTC instead of
	// fetching. Seed SNI the same way a real SNIP commit would leave it.
	s.SNI.Set(1)
	return s
}

// Opcode extracts the committed instruction's order code.
func (s *SEQ) Opcode() opcode {
	return opcode(s.SQ.Read() >> opcodeShift & 0x7)
}

// Clear implements the CLISQ control pulse: an immediate reset of SQ,
// STA, STB, SNI, and LOOPCTR, bypassing the shadow/commit delay so the
// fresh state is visible to the same TP's WSQ. BR1/BR2 are not
// part of CLISQ -- they persist across instruction boundaries until the
// next branch test overwrites them.
func (s *SEQ) Clear() {
	s.SQ.Clear()
	s.STA.Clear()
	s.STB.Clear()
	s.SNI.Clear()
	s.LOOPCTR.Clear()
}

// SetSNI implements the SNI control pulse.
func (s *SEQ) SetSNI() { s.SNI.Write(1) }

// AtNewInstruction reports whether the committed SNI flag marks the
// start of a new instruction.
func (s *SEQ) AtNewInstruction() bool { return s.SNI.Read() != 0 }

func (s *SEQ) Commit() {
	s.SQ.Commit()
	s.STA.Commit()
	s.STB.Commit()
	s.BR1.Commit()
	s.BR2.Commit()
	s.SNI.Commit()
	s.LOOPCTR.Commit()
}

func (s *SEQ) Reset() {
	s.SQ.Clear()
	s.STA.Clear()
	s.STB.Clear()
	s.BR1.Clear()
	s.BR2.Clear()
	s.SNI.Set(1) // GENRST also restarts at a fetch, same reasoning as NewSEQ
	s.LOOPCTR.Clear()
}
