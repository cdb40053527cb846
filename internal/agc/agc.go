package agc

import (
	"io"
)

// AGC is the top-level simulator core: it owns every subsystem and
// exposes the operations a driver (cmd/agc4sim, or a test) needs
// without reaching into internals.
type AGC struct {
	CRG *CRG
	ADR *ADR
	MBF *MBF
	PAR *PAR
	IO  *IO
	MEM *MEM
	ALU *ALU
	CTR *CTR
	INT *INT
	SCL *SCL
	MON *MON
	KBD *KBD
	DSP *DSP

	clk *CLK
}

// New constructs a freshly power-cycled AGC: PURST asserted, every
// register cleared, the scaler and counters idle.
func New() *AGC {
	crg := NewCRG()
	adr := NewADR()
	mbf := NewMBF()
	par := NewPAR()
	io_ := NewIO()
	mem := NewMEM(crg, io_, adr, par)
	alu := NewALU()
	ctr := &CTR{}
	intr := NewINT()
	scl := &SCL{}
	mon := NewMON()

	a := &AGC{
		CRG: crg, ADR: adr, MBF: mbf, PAR: par, IO: io_, MEM: mem, ALU: alu,
		CTR: ctr, INT: intr, SCL: scl, MON: mon,
		KBD: NewKBD(io_.IN1, intr),
		DSP: NewDSP(io_),
		clk: NewCLK(crg, adr, mbf, par, io_, mem, alu, ctr, intr, scl, mon),
	}
	return a
}

// Step advances the machine by exactly one time pulse.
func (a *AGC) Step() { a.clk.Step() }

// LoadRope reads an object file from r into memory.
func (a *AGC) LoadRope(r io.Reader) error { return LoadRope(a.MEM, r) }

// ReadMemory and WriteMemory are the Core API's flat address-space
// accessors; they never see cycle timing, only committed state.
func (a *AGC) ReadMemory(addr uint16) uint16     { return a.MEM.ReadMemory(addr) }
func (a *AGC) WriteMemory(addr uint16, v uint16) { a.MEM.WriteMemory(addr, v) }
func (a *AGC) InjectParityFault(addr uint16)     { a.MEM.InjectParityFault(addr) }

// PressKey is the Core API's DSKY keypress entry point.
func (a *AGC) PressKey(code int) { a.KBD.Keypress(code) }

// RaiseInterrupt latches a pending request for the named vector.
func (a *AGC) RaiseInterrupt(vector int) { a.INT.Request(vector) }

// RequestCounter latches a pending +1 (up=true) or -1 request for the
// named involuntary counter.
func (a *AGC) RequestCounter(index int, up bool) {
	if up {
		a.CTR.RequestUp(index)
	} else {
		a.CTR.RequestDown(index)
	}
}

// SetSwitch sets one of MON's named front-panel switches. It is the
// single entry point a driver uses instead of reaching into MON's
// fields directly, keeping the switch-name vocabulary in one place.
func (a *AGC) SetSwitch(name string, v bool) {
	switch name {
	case "PURST":
		a.MON.PURST = v
	case "RUN":
		a.MON.RUN = v
	case "STEP":
		a.MON.STEP = v
	case "INST":
		a.MON.INST = v
	case "FCLK":
		a.MON.FCLK = v
	case "SA":
		a.MON.SA = v
	case "SCL_ENAB":
		a.MON.SCLEnab = v
	}
}

// ArmSingleClock lets the next Step take the TPG out of WAIT (or past
// TP12) even while RUN/FCLK are off, for single-step driving; see
// MON.ArmSingleClock.
func (a *AGC) ArmSingleClock() { a.MON.ArmSingleClock() }

// ClearParityAlarm is the asynchronous PALM clear. It also drops the CF
// lamp bit RMF sets alongside PALM, since the lamp mirrors the latch
// rather than having an independent clear path.
func (a *AGC) ClearParityAlarm() {
	a.PAR.ClearPALM()
	a.IO.OUT1.Set(a.IO.OUT1.Read() &^ out1BitCOMPFAIL)
}

// Reset applies GENRST: every subsystem clears except MEM (rope
// contents survive), MON (front-panel switches survive), and PAR.PALM
// (cleared only by ClearParityAlarm).
func (a *AGC) Reset() {
	a.CRG.Reset()
	a.ADR.Reset()
	a.MBF.Reset()
	a.PAR.Reset()
	a.IO.Reset()
	a.ALU.Reset()
	a.CTR.Reset()
	a.INT.Reset()
	a.SCL.Reset()
	a.clk.SEQ().Reset()
	a.clk.TPG().Reset()
}
