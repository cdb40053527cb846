package agc

// ModeSwitches packs MON's front-panel booleans into one word for a
// front-panel-style display; bit order is this module's own, since
// R-393's physical switch panel layout isn't part of the material this
// module was built from.
const (
	modeBitPURST = 1 << 0
	modeBitRUN   = 1 << 1
	modeBitSTEP  = 1 << 2
	modeBitINST  = 1 << 3
	modeBitFCLK  = 1 << 4
	modeBitSA    = 1 << 5
	modeBitSCLEN = 1 << 6
)

func modeSwitchWord(m *MON) uint16 {
	var v uint16
	if m.PURST {
		v |= modeBitPURST
	}
	if m.RUN {
		v |= modeBitRUN
	}
	if m.STEP {
		v |= modeBitSTEP
	}
	if m.INST {
		v |= modeBitINST
	}
	if m.FCLK {
		v |= modeBitFCLK
	}
	if m.SA {
		v |= modeBitSA
	}
	if m.SCLEnab {
		v |= modeBitSCLEN
	}
	return v
}

// MonitorView is a value-type copy of committed machine state, for a
// driver's display loop or a test assertion -- never a live handle into
// the simulator, so a caller holding one can't accidentally peek at an
// in-flight TP's shadow writes; it exposes only committed state.
type MonitorView struct {
	A, Q, Z, LP uint16
	S, BANK     uint16
	G, G15      uint16
	SQ          uint16
	STA, STB    uint16
	SNI         bool
	PALM        bool
	TPState     string
	Subseq      string
	SCL         uint16
	RPCELL      uint8
	INHINT      bool
	UpCELL, DnCELL uint8
	IN0, IN1, IN2, IN3     uint16
	OUT1, OUT2, OUT3, OUT4 uint16
	DSKY1, DSKY2, DSKY3    uint16
	ModeSwitches           uint16
}

// Snapshot captures the machine's committed state as a monitor view,
// every field a front-panel display needs: TPG/SEQ decode state, the
// four central registers, address decode, the DSKY's I/O registers and
// digit drivers, and the mode-switch word.
func (a *AGC) Snapshot() MonitorView {
	r1, r2, r3 := a.DSP.Registers()
	return MonitorView{
		A: a.CRG.A.Read(), Q: a.CRG.Q.Read(), Z: a.CRG.Z.Read(), LP: a.CRG.LP.Read(),
		S: a.ADR.S.Read(), BANK: a.ADR.BANK.Read(),
		G: a.MBF.G.Read(), G15: a.PAR.G15.Read(),
		SQ:  a.clk.SEQ().SQ.Read(),
		STA: a.clk.SEQ().STA.Read(), STB: a.clk.SEQ().STB.Read(),
		SNI:     a.clk.SEQ().AtNewInstruction(),
		PALM:    a.PAR.PALM,
		TPState: a.clk.TPG().State().String(),
		Subseq:  a.clk.current.String(),
		SCL:     a.SCL.SCLValue(),
		RPCELL:  a.INT.RPCELL,
		INHINT:  a.INT.INHINT,
		UpCELL:  a.CTR.UpCELL, DnCELL: a.CTR.DnCELL,
		IN0: a.IO.IN0.Read(), IN1: a.IO.IN1.Read(), IN2: a.IO.IN2.Read(), IN3: a.IO.IN3.Read(),
		OUT1: a.IO.OUT1.Read(), OUT2: a.IO.OUT2.Read(), OUT3: a.IO.OUT3.Read(), OUT4: a.IO.OUT4.Read(),
		DSKY1: r1, DSKY2: r2, DSKY3: r3,
		ModeSwitches: modeSwitchWord(a.MON),
	}
}
