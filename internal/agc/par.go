package agc

// PAR owns the parity bit (G15), the parity-check result (P) and its
// latched copy (P2), and the parity alarm flip-flop PALM. PALM
// is exempted from GENRST -- it is cleared only by user command.
type PAR struct {
	G15  *Register // 1 bit: the parity bit that travels with G
	P    *Register // 1 bit: live parity-check result
	P2   *Register // 1 bit: latched copy of P
	PALM bool      // parity alarm latch; survives GENRST
}

func NewPAR() *PAR {
	return &PAR{
		G15: NewRegister(1),
		P:   NewRegister(1),
		P2:  NewRegister(1),
	}
}

// oddParity16 returns true if the 15 data bits plus the candidate parity
// bit together have an odd number of set bits: odd parity
// across the 15 data bits and G15.
func oddParity16(data15 uint16, parityBit uint16) bool {
	v := data15&0x7FFF | (parityBit&1)<<15
	count := 0
	for v != 0 {
		count += int(v & 1)
		v >>= 1
	}
	return count%2 == 1
}

// Check runs the parity test for a fetched word, taking the parity bit
// directly rather than reading G15 back: G15's write for this same fetch
// is only staged this TP, so a read-back here would see the *previous*
// word's parity bit, not this one's. On mismatch it latches PALM; a test
// signal being active mirrors TP's "parity alarm FF to latch PARITY ALARM
// indicator" from original_source's v1.10 log entry.
func (p *PAR) Check(data15 uint16, parityBit uint16) {
	ok := oddParity16(data15, parityBit)
	if ok {
		p.P.Write(1)
	} else {
		p.P.Write(0)
		p.PALM = true
	}
	p.P2.Write(p.P.Read())
}

// ComputeParity returns the parity bit to store alongside data15 on a
// write, so every word MEM ever commits is internally consistent.
func (p *PAR) ComputeParity(data15 uint16) uint16 {
	ones := 0
	v := data15 & 0x7FFF
	for v != 0 {
		ones += int(v & 1)
		v >>= 1
	}
	if ones%2 == 0 {
		return 1
	}
	return 0
}

// ClearPALM is the asynchronous user command (AGCmain.cpp's
// ';' key) that is the only way to clear the alarm.
func (p *PAR) ClearPALM() { p.PALM = false }

func (p *PAR) Commit() {
	p.G15.Commit()
	p.P.Commit()
	p.P2.Commit()
}

// Reset clears everything except PALM, per the GENRST exemption.
func (p *PAR) Reset() {
	p.G15.Clear()
	p.P.Clear()
	p.P2.Clear()
}
