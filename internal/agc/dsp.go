package agc

// DSP decodes the DSKY's alarm/indicator lamps from OUT1 and exposes the
// three raw digit-driver registers. R-393's exact 7-segment relay
// code table isn't part of the material available to this module, so the
// three digit registers are surfaced as their raw driver words rather
// than segment-decoded glyphs; callers that need glyphs decode those
// words themselves. This scope decision is recorded in DESIGN.md.
type DSP struct {
	io *IO
}

func NewDSP(io *IO) *DSP { return &DSP{io: io} }

// OUT1 bit assignments: bits 0, 2, 4, 5, 7 drive COMP, UPTL,
// KEYRLS, COMPFAIL, PROG ALM respectively.
const (
	out1BitCOMP     = 1 << 0
	out1BitUPTL     = 1 << 2
	out1BitKEYRLS   = 1 << 4
	out1BitCOMPFAIL = 1 << 5
	out1BitPROGALM  = 1 << 7
)

func (d *DSP) CompActy() bool  { return d.io.OUT1.Read()&out1BitCOMP != 0 }
func (d *DSP) Uplink() bool    { return d.io.OUT1.Read()&out1BitUPTL != 0 }
func (d *DSP) KeyRelease() bool { return d.io.OUT1.Read()&out1BitKEYRLS != 0 }
func (d *DSP) CheckFail() bool { return d.io.OUT1.Read()&out1BitCOMPFAIL != 0 }
func (d *DSP) ProgAlarm() bool { return d.io.OUT1.Read()&out1BitPROGALM != 0 }

// Registers returns the raw driver words for the three DSKY digit
// registers (OUT2/OUT3/OUT4 in this module's memory map).
func (d *DSP) Registers() (r1, r2, r3 uint16) {
	return d.io.OUT2.Read(), d.io.OUT3.Read(), d.io.OUT4.Read()
}
