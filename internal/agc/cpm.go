package agc

import "fmt"

// cpmRow holds the ordered pulse list for each of a subsequence's twelve
// time pulses, the single source of truth for what fires when. TP1 is
// index 0.
type cpmRow [12][]ControlPulse

// cpmTable is the control pulse matrix: the only place pulse lists are
// named. CLK and the decode functions below select a row; nothing in
// this package branches on opcode to decide what a given TP does beyond
// picking which row applies.
var cpmTable = map[Subsequence]cpmRow{
	SeqSTD1: {
		0: {CLISQ, RZ, WS},
		1: {RMF},
		2: {RG, WSQ},
		3: {ADRSQ},
		4: {ZP1},
	},
	SeqTC0: {
		0:  {RS, WZ},
		11: {SNIP, CLINH1},
	},
	SeqCCS0: {
		0:  {RMF},
		1:  {RG, WX},
		2:  {GX, RU, WE, TMZ, TOV, STINH1},
		11: {SNIP, CLINH1},
	},
	SeqCA1: {
		0:  {RMF},
		1:  {RG, WA},
		11: {SNIP, CLINH1},
	},
	SeqCS1: {
		0:  {RMF},
		1:  {RG, WX},
		2:  {GXC, RU, WA},
		11: {SNIP, CLINH1},
	},
	SeqAD1: {
		0:  {RMF},
		1:  {RG, WX},
		2:  {RA, WY},
		3:  {GX, GY, RU, WA, TMZ, TOV, STINH1},
		11: {SNIP, CLINH1},
	},
	SeqTS1: {
		0:  {RA, WE},
		11: {SNIP, CLINH1},
	},
	SeqPINC: {
		0:  {WPCTR},
		11: {SNIP, CLINH1},
	},
	SeqMINC: {
		0:  {WPCTR},
		11: {SNIP, CLINH1},
	},
	// RUPT1 folds in what a separate RUPT3 stage would otherwise do
	// (original_source keeps them distinct); granting, saving the return
	// address and the machine's working registers, inhibiting nested
	// interrupts, and jumping to the vector all fit inside one 12-TP
	// subsequence here, so RUPT3 is never reached -- see DESIGN.md. A,
	// Q and the branch test flip-flops each get their own *RUPT save
	// location, same as Z does via LP, so RESUME can put the interrupted
	// instruction's state back exactly as RUPT1 found it.
	SeqRUPT1: {
		0:  {GRANT},
		1:  {RZ, WLP},
		2:  {RA, WARUPT},
		3:  {RQ, WQRUPT},
		4:  {RBR, WBRUPT},
		5:  {INH},
		6:  {VECZ},
		11: {SNIP, CLINH1},
	},
	SeqRUPT3: {11: {SNIP}},
	SeqRSM3: {
		0:  {RLP, WZ},
		1:  {RARUPT, WA},
		2:  {RQRUPT, WQ},
		3:  {RBRUPT, WBR},
		4:  {RESUME, RELINT},
		11: {SNIP, CLINH1},
	},
	SeqGOJ1: {
		0:  {GOZ},
		11: {SNIP, CLINH1},
	},
	// MP/DV stubs: Block I's multiply/divide extracodes are not part of
	// this simulator's decoded opcode set (see decode below); these rows
	// exist so a future opcode addition has somewhere to land without
	// reshaping the table, and so that a row lookup for them never comes
	// back empty mid-instruction.
	SeqMP0: {11: {SNIP}},
	SeqMP1: {11: {SNIP}},
	SeqMP3: {11: {SNIP}},
	SeqDV0: {11: {SNIP}},
	SeqDV1: {11: {SNIP}},
	SeqDV3: {11: {SNIP}},
}

// PulsesFor returns the pulse list for a subsequence's TP (TP1..TP12).
// An unmapped combination returns nil, which CLK treats as an idle TP,
// not an error -- most subsequences use only their first few TPs and
// idle out the rest, same as the real hardware's fixed 12-TP cadence.
func PulsesFor(seq Subsequence, tp TPState) []ControlPulse {
	row, ok := cpmTable[seq]
	if !ok || !tp.running() {
		return nil
	}
	return row[int(tp-TP1)]
}

// DecodeSubsequence is the pure opcode decoder for the ordinary
// instruction path: given the sequencer's committed state, it names the
// subsequence that should run next. It never inspects memory or I/O,
// only SEQ, and it never inspects counter or interrupt state -- CLK
// checks those first, at the same instruction boundary, and only falls
// back to this decoder when neither has a pending request, since a
// counter or interrupt grant always takes priority over ordinary
// instruction dispatch.
//
// opMASK is an accepted bit pattern with no implemented subsequence: a
// true bitwise mask needs a logic unit this ALU (a ones-complement
// adder only) doesn't model. It decodes to SeqGOJ1, the simulator's own
// "restart fetch" catch-all, rather than silently falling through. See
// DESIGN.md.
func DecodeSubsequence(seq *SEQ) Subsequence {
	if seq.AtNewInstruction() {
		return SeqSTD1
	}
	switch seq.Opcode() {
	case opTC:
		return SeqTC0
	case opCCS:
		return SeqCCS0
	case opRESUME:
		return SeqRSM3
	case opCA:
		return SeqCA1
	case opCS:
		return SeqCS1
	case opAD:
		return SeqAD1
	case opTS:
		return SeqTS1
	default:
		return SeqGOJ1
	}
}

// ValidateCPM checks that every pulse named anywhere in the table is
// below numPulses, i.e. a real ControlPulse constant. It exists for
// cpm_test.go and for dump-cpm's sanity pass, not for CLK's hot path --
// a real ErrUnknownPulse would mean cpm.go and pulses.go have drifted
// apart during an edit, not a runtime condition any rope can trigger.
func ValidateCPM() error {
	for seq, row := range cpmTable {
		for tp, pulses := range row {
			for _, p := range pulses {
				if p >= numPulses {
					return fmt.Errorf("%w: %s TP%d has pulse code %d", ErrUnknownPulse, seq, tp+1, p)
				}
			}
		}
	}
	return nil
}
