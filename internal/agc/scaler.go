package agc

// SCL is the free-running scaler: a 14-bit counter incremented
// every CLK while SCL_ENAB is set. F10, F13 and F17 are square waves
// taken from bits 10, 13 and 17 of the (conceptually wider, 17-bit)
// scale count; Block I only implements the low 14 bits in hardware, so
// F17's "bit 17" is modeled as a separate free-running ripple stage above
// SCL rather than an out-of-range bit index.
type SCL struct {
	count uint32 // wide enough to hold bit 17's ripple without wrapping early

	f10, f13, f17    bool
	f10Rose, f13Rose bool
	f17Rose          bool
}

const (
	sclMask  = 1<<14 - 1
	f10Bit   = 1 << 9  // bit 10 (1-indexed)
	f13Bit   = 1 << 12 // bit 13
	f17Bit   = 1 << 16 // bit 17
	sclWidth = 1 << 17
)

// Advance runs one CLK's worth of scaler logic. It is
// unconditional on the current subsequence but gated by enab (MON's
// SCL_ENAB switch, v1.14's "switch to enable/disable the scaler").
func (s *SCL) Advance(enab bool) {
	s.f10Rose, s.f13Rose, s.f17Rose = false, false, false
	if !enab {
		return
	}
	prev := s.count
	s.count = (s.count + 1) % sclWidth

	wasF10, wasF13, wasF17 := s.f10, s.f13, s.f17
	s.f10 = prev&f10Bit != 0
	s.f13 = prev&f13Bit != 0
	s.f17 = prev&f17Bit != 0

	s.f10Rose = s.f10 && !wasF10
	s.f13Rose = s.f13 && !wasF13
	s.f17Rose = s.f17 && !wasF17
}

// SCLValue returns the 14-bit scaler register value for display/test.
func (s *SCL) SCLValue() uint16 { return uint16(s.count & sclMask) }

func (s *SCL) F10() bool { return s.f10 }
func (s *SCL) F13() bool { return s.f13 }
func (s *SCL) F17() bool { return s.f17 }

// F10Rose/F13Rose/F17Rose report whether this CLK was the rising edge of
// the corresponding scaler tap, driving the counter/interrupt sources:
// F17 -> TIME1/TIME2, F10 -> TIME3, F13 -> interrupt test.
func (s *SCL) F10Rose() bool { return s.f10Rose }
func (s *SCL) F13Rose() bool { return s.f13Rose }
func (s *SCL) F17Rose() bool { return s.f17Rose }

// Reset clears the scaler and its edge latches. GENRST exempts nothing
// about the scaler itself, only MEM/MON/PALM are exempted.
func (s *SCL) Reset() {
	*s = SCL{}
}
