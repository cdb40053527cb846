package agc

// MBF is the memory buffer register: G holds bits 16 and
// 14-1 of a fetched or about-to-be-stored memory word. Bit 15 of G is
// unused storage -- the parity bit that visually occupies that position
// lives in PAR.G15 instead, matching original_source's v1.9/v1.10
// decision to split parity out of G "for convenience, because the parity
// bit in G is set independently from the rest of the register."
type MBF struct {
	G *Register // 16 bits; bit 15 unused
}

func NewMBF() *MBF { return &MBF{G: NewRegister(16)} }

func (m *MBF) Commit() { m.G.Commit() }
func (m *MBF) Reset()  { m.G.Clear() }
