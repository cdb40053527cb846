package agc

// CLK is the cycle dispatcher: each Step() call executes exactly one
// time pulse, running its CPM-selected pulse list through the seven
// phases A-G. It is the only component that mutates more than one
// subsystem per call; every subsystem method it calls is otherwise a
// small, independently testable primitive.
type CLK struct {
	tpg *TPG
	seq *SEQ
	alu *ALU
	mem *MEM
	bus *Bus
	crg *CRG
	adr *ADR
	mbf *MBF
	par *PAR
	io  *IO
	ctr *CTR
	int *INT
	scl *SCL
	mon *MON

	current Subsequence // the subsequence whose row is driving TP2..TP12

	subseqGen uint64 // bumped every TP1, once per subsequence instance
	ovfSetGen uint64 // subseqGen at the TP that last latched INHINT1 via STINH1
}

func NewCLK(crg *CRG, adr *ADR, mbf *MBF, par *PAR, io *IO, mem *MEM, alu *ALU, ctr *CTR, in *INT, scl *SCL, mon *MON) *CLK {
	return &CLK{
		tpg: NewTPG(),
		seq: NewSEQ(),
		alu: alu,
		mem: mem,
		bus: &Bus{},
		crg: crg,
		adr: adr,
		mbf: mbf,
		par: par,
		io:  io,
		ctr: ctr,
		int: in,
		scl: scl,
		mon: mon,
	}
}

func (c *CLK) TPG() *TPG { return c.tpg }
func (c *CLK) SEQ() *SEQ { return c.seq }

// Step runs one time pulse. It is a no-op while powered off; switches do
// not leave that state, only AGC.Reset (which returns the TPG to PWRON).
func (c *CLK) Step() {
	if c.tpg.State() == TPPWROFF {
		return
	}

	tp := c.tpg.State()
	if !tp.running() {
		c.scl.Advance(c.mon.SCLEnab)
		c.serviceScalerEdges()
		c.tpg.Advance(c.mon, c.mon.ConsumeSingleClock())
		return
	}

	if tp == TP1 {
		c.subseqGen++
		c.current = c.decideSubsequence()
	}

	c.bus.Reset()
	c.alu.ResetGates()
	cadr := c.adr.EffectiveAddress()
	pulses := PulsesFor(c.current, tp)

	c.runPhaseA(pulses, cadr)

	aluActive := false
	for _, p := range pulses {
		switch p {
		case GX, GXC, GY, GYC, GCI:
			c.runGate(p)
			aluActive = true
		}
	}
	var aluResult uint16
	if aluActive {
		aluResult = c.alu.Compute()
	}

	for _, p := range pulses {
		if p == RU {
			c.bus.DriveWriteFromALU(aluResult)
		}
	}
	c.bus.SettleWrite()

	c.runPhaseD(pulses, cadr, aluResult)

	c.scl.Advance(c.mon.SCLEnab)
	c.serviceScalerEdges()
	c.tpg.Advance(c.mon, c.mon.ConsumeSingleClock())
	c.commit()
}

// serviceScalerEdges wires the scaler's rising edges to their named
// sources: F17 drives the TIME1/TIME2 timekeeping cascade, F10 drives
// TIME3, and F13 drives the T3RUPT interrupt test. This runs right
// after Phase E on every Step, including while halted in WAIT/STBY, since
// the scaler itself free-runs whenever SCL_ENAB is set regardless of the
// sequencer's state.
func (c *CLK) serviceScalerEdges() {
	if c.scl.F17Rose() {
		c.ctr.RequestUp(CtrTIME1)
	}
	if c.scl.F10Rose() {
		c.ctr.RequestUp(CtrTIME3)
	}
	if c.scl.F13Rose() {
		c.int.Request(RuptT3RUPT)
	}
}

// decideSubsequence applies the priority rule: at a genuine instruction
// boundary, a pending counter service request or a grantable interrupt
// preempts ordinary opcode dispatch. Both checks are non-mutating peeks
// -- the GRANT and WPCTR pulses perform the actual state transition, in
// Phase D, same as any other pulse.
func (c *CLK) decideSubsequence() Subsequence {
	if c.seq.AtNewInstruction() {
		if c.ctr.Pending() {
			_, up, _ := c.ctr.Select()
			if up {
				return SeqPINC
			}
			return SeqMINC
		}
		if _, ok := c.int.SelectGrant(); ok {
			return SeqRUPT1
		}
	}
	return DecodeSubsequence(c.seq)
}

func (c *CLK) runGate(p ControlPulse) {
	switch p {
	case GX:
		c.alu.GateX()
	case GXC:
		c.alu.GateXC()
	case GY:
		c.alu.GateY()
	case GYC:
		c.alu.GateYC()
	case GCI:
		c.alu.GateCI()
	}
}

// runPhaseA executes every read-bus and memory-fetch pulse, Phase A.
// RMF runs here too: it has no bus effect of its own, but it must
// complete before any later TP's RG can see its result, so it belongs
// with the rest of this TP's "gather" work.
func (c *CLK) runPhaseA(pulses []ControlPulse, cadr uint16) {
	for _, p := range pulses {
		switch p {
		case RA:
			c.bus.OrRead(c.crg.A.Read())
		case RQ:
			c.bus.OrRead(c.crg.Q.Read())
		case RZ:
			c.bus.OrRead(c.crg.Z.Read())
		case RLP:
			c.bus.OrRead(c.crg.LP.Read())
		case RB:
			c.bus.OrRead(c.alu.B.Read())
		case RG:
			c.bus.OrRead(c.mbf.G.Read())
		case RS:
			c.bus.OrRead(c.adr.S.Read())
		case RBANK:
			c.bus.OrRead(c.adr.BANK.Read())
		case RIN0:
			c.bus.OrRead(c.io.IN0.Read())
		case RIN1:
			c.bus.OrRead(c.io.IN1.Read())
		case RIN2:
			c.bus.OrRead(c.io.IN2.Read())
		case RIN3:
			c.bus.OrRead(c.io.IN3.Read())
		case RBR:
			c.bus.OrRead(c.seq.BR1.Read()<<1 | c.seq.BR2.Read())
		case RARUPT:
			c.bus.OrRead(c.int.ARUPT.Read())
		case RQRUPT:
			c.bus.OrRead(c.int.QRUPT.Read())
		case RBRUPT:
			c.bus.OrRead(c.int.BRUPT.Read())
		case RMF:
			c.mem.Fetch(c.mbf, cadr)
			if c.par.PALM {
				c.io.OUT1.Write(c.io.OUT1.Read() | out1BitCOMPFAIL)
			}
		}
	}
}

// runPhaseD executes every write, branch-test, sequencer, interrupt, and
// counter pulse, Phase D, using the settled write bus and the Phase B/C
// ALU result passed in directly (not re-read from U, which is only
// staged this same TP -- see alu.go).
func (c *CLK) runPhaseD(pulses []ControlPulse, cadr uint16, aluResult uint16) {
	wb := c.bus.Write()
	for _, p := range pulses {
		switch p {
		case WA:
			c.crg.A.Write(wb)
		case WQ:
			c.crg.Q.Write(wb)
		case WZ:
			c.crg.Z.Write(wb)
		case WLP:
			c.crg.LP.Write(wb)
		case WB:
			c.alu.B.Write(wb)
		case WS:
			c.adr.S.Write(wb)
		case WBANK:
			c.adr.BANK.Write(wb)
		case WG:
			c.mbf.G.Write(wb)
		case WG15:
			c.par.G15.Write(wb)
		case WOUT1:
			c.io.OUT1.Write(wb)
		case WOUT2:
			c.io.OUT2.Write(wb)
		case WOUT3:
			c.io.OUT3.Write(wb)
		case WOUT4:
			c.io.OUT4.Write(wb)
		case WX:
			c.alu.X.Write(wb)
		case WY:
			c.alu.Y.Write(wb)
		case WARUPT:
			c.int.ARUPT.Write(wb)
		case WQRUPT:
			c.int.QRUPT.Write(wb)
		case WBRUPT:
			c.int.BRUPT.Write(wb & 0x3)
		case WBR:
			c.seq.BR1.Write(wb >> 1 & 1)
			c.seq.BR2.Write(wb & 1)
		case WE:
			c.mem.Store(c.mbf, wb, cadr)

		case TMZ:
			c.seq.BR1.Write(b2u(aluResult == 0xFFFF)) // minus zero, ones-complement's negative representation of 0
		case TSGN:
			c.seq.BR1.Write(b2u(aluResult&0x8000 != 0))
		case TOV:
			c.seq.BR2.Write(b2u(c.alu.Overflow()))

		case CLISQ:
			c.seq.Clear()
		case WSQ:
			c.seq.SQ.Write(wb)
		case ADRSQ:
			c.adr.S.Write(c.seq.SQ.Read() & 0xFFF)
		case ST1:
			c.seq.STA.Write(c.seq.STA.Read() + 1)
		case ST2:
			c.seq.STB.Write(c.seq.STB.Read() + 1)
		case SNIP:
			c.seq.SetSNI()
		case ZP1:
			c.crg.Z.Write(c.crg.Z.Read() + 1)
		case GOZ:
			c.crg.Z.Clear()
		case CLL:
			c.seq.LOOPCTR.Clear()
		case LP1:
			c.seq.LOOPCTR.Write(c.seq.LOOPCTR.Read() + 1)

		case INH:
			c.int.INHINT = true
		case RELINT:
			c.int.INHINT = false
		case STINH1:
			// Only the overflow test this same TP actually arms the
			// inhibit; TOV and STINH1 share the same CPM row because
			// they're driven by the same ALU condition.
			if c.alu.Overflow() {
				c.int.INHINT1 = true
				c.ovfSetGen = c.subseqGen
			}
		case CLINH1:
			// Never clears on the same subsequence pass that set it --
			// that pass's own TP12 would otherwise undo STINH1 before
			// the next instruction boundary ever sees the inhibit.
			if c.subseqGen != c.ovfSetGen {
				c.int.INHINT1 = false
			}
		case GRANT:
			if vec, ok := c.int.SelectGrant(); ok {
				c.int.Grant(vec)
			}
		case VECZ:
			c.crg.Z.Write(vectorEntryAddr[c.int.RPCELL])
		case RESUME:
			c.int.Resume()

		case WPCTR:
			c.servicePendingCounter()
		}
	}
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// servicePendingCounter implements the WPCTR pulse: a plain binary
// wraparound at the 15-bit cell width, not the ALU's true
// ones-complement end-around carry -- the counters are monotonically
// increasing telemetry/time words, not signed arithmetic operands, and
// original_source does not specify their wrap behavior precisely enough
// to justify the extra complexity. See DESIGN.md.
func (c *CLK) servicePendingCounter() {
	idx, up, ok := c.ctr.Select()
	if !ok {
		return
	}
	addr := counterAddr[idx]
	v := c.mem.ReadMemory(addr) & 0x7FFF
	var nv uint16
	overflowed := false
	if up {
		if v == 0x7FFF {
			nv, overflowed = 0, true
		} else {
			nv = v + 1
		}
	} else {
		if v == 0 {
			nv, overflowed = 0x7FFF, true
		} else {
			nv = v - 1
		}
	}
	c.mem.WriteMemory(addr, nv)
	c.ctr.Service(idx, up)
	if overflowed {
		if target := counterOverflowTarget[idx]; target >= 0 {
			if up {
				c.ctr.RequestUp(target)
			} else {
				c.ctr.RequestDown(target)
			}
		}
	}
}

// commit sweeps every subsystem's shadow state into committed state,
// Phase G, and must run after TPG.Advance so TP1's CLISQ pulse for the
// *next* subsequence sees this TP's writes already settled.
func (c *CLK) commit() {
	c.crg.Commit()
	c.adr.Commit()
	c.mbf.Commit()
	c.par.Commit()
	c.alu.Commit()
	c.seq.Commit()
	c.io.Commit()
	c.int.Commit()
}
