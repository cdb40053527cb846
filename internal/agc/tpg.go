package agc

// TPState is one state of the time-pulse generator: PWRON/STBY/PWROFF
// bracket the power lifecycle, WAIT parks a halted machine, and
// TP1..TP12 are the twelve pulses of a running subsequence.
type TPState uint8

const (
	TPPWROFF TPState = iota
	TPPWRON
	TPSTBY
	TPWAIT
	TP1
	TP2
	TP3
	TP4
	TP5
	TP6
	TP7
	TP8
	TP9
	TP10
	TP11
	TP12
)

var tpStateNames = [...]string{
	TPPWROFF: "PWROFF", TPPWRON: "PWRON", TPSTBY: "STBY", TPWAIT: "WAIT",
	TP1: "TP1", TP2: "TP2", TP3: "TP3", TP4: "TP4", TP5: "TP5", TP6: "TP6",
	TP7: "TP7", TP8: "TP8", TP9: "TP9", TP10: "TP10", TP11: "TP11", TP12: "TP12",
}

func (s TPState) String() string {
	if int(s) < len(tpStateNames) && tpStateNames[s] != "" {
		return tpStateNames[s]
	}
	return "????"
}

// running reports whether s is one of TP1..TP12.
func (s TPState) running() bool { return s >= TP1 && s <= TP12 }

// TPG is the time-pulse generator. It owns only the current state; CLK
// consults MON's switches to decide transitions at TP12 and drives
// CLISQ/SNI side effects on SEQ at the moments named below.
type TPG struct {
	state TPState
}

func NewTPG() *TPG {
	return &TPG{state: TPPWRON}
}

func (t *TPG) State() TPState { return t.state }

// AtTP1 reports whether this TP is TP1, the TP at which STD1's row fires
// CLISQ.
func (t *TPG) AtTP1() bool { return t.state == TP1 }

// AtTP12 reports whether this TP is the last of its subsequence. SNI is
// not cleared here: it is set by a terminal subsequence's SNIP at TP12
// and cleared by CLISQ at STD1's TP1, never mid-subsequence.
func (t *TPG) AtTP12() bool { return t.state == TP12 }

// Advance computes the next TP state. mon supplies the PURST/RUN/SA/FCLK
// switches that gate WAIT/STBY transitions; singleClock is
// MON.ConsumeSingleClock's result for this Step.
func (t *TPG) Advance(mon *MON, singleClock bool) {
	switch t.state {
	case TPPWRON:
		t.state = TP1
	case TPPWROFF:
		// no spontaneous transition; the driver must re-power explicitly.
	case TPSTBY:
		if mon.PURST || (mon.RUN && !mon.SA) {
			t.state = TP1
		}
	case TPWAIT:
		if mon.RUN || singleClock {
			t.state = TP1
		}
	default:
		if !t.state.running() {
			t.state = TPWAIT
			return
		}
		if t.state != TP12 {
			t.state++
			return
		}
		// TP12: decide whether to continue, halt, or stand by.
		switch {
		case mon.SA && !mon.RUN:
			t.state = TPSTBY
		case !mon.RUN && !mon.FCLK && !singleClock:
			t.state = TPWAIT
		default:
			t.state = TP1
		}
	}
}

func (t *TPG) Reset() {
	t.state = TPPWRON
}
