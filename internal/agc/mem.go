package agc

// Overlay addresses 0-17(oct): central/IO registers and the two pseudo
// write-only interrupt-inhibit addresses, with address 17 reserved for
// BANK -- see DESIGN.md for how this reconciles with original_source's
// MON.cpp numbering.
const (
	addrA       = 0o00
	addrQ       = 0o01
	addrZ       = 0o02
	addrLP      = 0o03
	addrIN0     = 0o04
	addrIN1     = 0o05
	addrIN2     = 0o06
	addrIN3     = 0o07
	addrOUT0Gap = 0o10 // OUT0 deleted per original_source v1.12; unmapped
	addrOUT1    = 0o11
	addrOUT2    = 0o12
	addrOUT3    = 0o13
	addrOUT4    = 0o14
	addrRELINT  = 0o15 // RELINT pseudo-address: reads 0, memory writes ignored (the RELINT pulse clears INHINT)
	addrINHINT  = 0o16 // INHINT pseudo-address: reads 0, memory writes ignored (the INH pulse sets INHINT)
	addrBANK    = 0o17

	overlayTop      = 0o17
	eraseableTop    = 0o1777
	eraseableWords  = eraseableTop + 1 // includes the overlay range, which is never indexed directly
	fixedWordsFloor = 32 * 1024        // covers BANK's full 5-bit range

	// maxAddress is the last address the memory map covers at all; every
	// entry point that takes an address from outside the package (the
	// rope loader, chiefly) checks against it before touching m.fixed,
	// since fixedCell indexes that slice with no bounds check of its own.
	maxAddress = eraseableBoundary + fixedWordsFloor - 1
)

type memCell struct {
	data   uint16 // 15 bits
	parity uint16 // 1 bit
}

// MEM is the memory subsystem: 1 KW eraseable (which includes the
// 0-17(oct) register overlay) plus fixed memory sized to the real
// hardware's capacity. Each cell tracks its own parity bit independently
// of the data, which keeps the overlay/eraseable/fixed address decode
// free of bit-layout puns.
type MEM struct {
	eraseable [eraseableWords]memCell
	fixed     []memCell // index 0 == CADR eraseableBoundary(02000)

	crg *CRG
	io  *IO
	adr *ADR
	par *PAR
}

func NewMEM(crg *CRG, io *IO, adr *ADR, par *PAR) *MEM {
	return &MEM{
		fixed: make([]memCell, fixedWordsFloor),
		crg:   crg,
		io:    io,
		adr:   adr,
		par:   par,
	}
}

func (m *MEM) isOverlay(addr uint16) bool { return addr <= overlayTop }
func (m *MEM) isFixed(addr uint16) bool   { return addr >= eraseableBoundary }

// ValidAddress reports whether addr falls inside the memory map at all
// (overlay, eraseable or fixed). addr is a uint16 so every value up to
// 0xFFFF is representable, but fixed memory is sized to maxAddress;
// anything past it has nowhere to land.
func (m *MEM) ValidAddress(addr uint16) bool { return int(addr) <= maxAddress }

// ReadMemory is the Core API primitive. For overlay addresses it
// aliases the backing register's committed value; otherwise it returns
// the 15-bit data word only -- parity is not part of this return value.
func (m *MEM) ReadMemory(addr uint16) uint16 {
	if m.isOverlay(addr) {
		return m.readOverlay(addr)
	}
	if m.isFixed(addr) {
		return m.fixedCell(addr).data
	}
	return m.eraseable[addr].data
}

// WriteMemory is the Core API primitive. Eraseable writes recompute
// parity so the word is always internally consistent; fixed writes at
// runtime are silently dropped (WRITE_TO_FIXED), matching real hardware.
// Overlay addresses alias the backing register.
func (m *MEM) WriteMemory(addr uint16, v uint16) {
	if m.isOverlay(addr) {
		m.writeOverlay(addr, v)
		return
	}
	if m.isFixed(addr) {
		return // WRITE_TO_FIXED: silently dropped at runtime
	}
	data := v & 0x7FFF
	m.eraseable[addr] = memCell{data: data, parity: m.par.ComputeParity(data)}
}

// LoadWord is used only by the rope loader: unlike WriteMemory, it is
// permitted to write fixed memory, which is how a rope image's program
// words actually get there.
func (m *MEM) LoadWord(addr uint16, v uint16) {
	data := v & 0x7FFF
	cell := memCell{data: data, parity: m.par.ComputeParity(data)}
	if m.isOverlay(addr) {
		m.writeOverlay(addr, v)
		return
	}
	if m.isFixed(addr) {
		*m.fixedCell(addr) = cell
		return
	}
	m.eraseable[addr] = cell
}

// InjectParityFault is the test hook that flips the stored parity bit of
// the word at addr without touching its data, since there is no other
// way to get a bad-parity word past a loader that always computes
// correct parity.
func (m *MEM) InjectParityFault(addr uint16) {
	if m.isOverlay(addr) {
		return
	}
	cell := m.cellPtr(addr)
	cell.parity ^= 1
}

func (m *MEM) cellPtr(addr uint16) *memCell {
	if m.isFixed(addr) {
		return m.fixedCell(addr)
	}
	return &m.eraseable[addr]
}

func (m *MEM) fixedCell(addr uint16) *memCell {
	idx := int(addr) - eraseableBoundary
	return &m.fixed[idx]
}

// Fetch is the cycle-accurate path used by the RMF control pulse: it
// latches the addressed word's data and parity into MBF/PAR and runs the
// parity check.
func (m *MEM) Fetch(mbf *MBF, addr uint16) {
	if m.isOverlay(addr) {
		v := m.readOverlay(addr)
		pb := m.par.ComputeParity(v & 0x7FFF)
		mbf.G.Write(v)
		m.par.G15.Write(pb)
		m.par.Check(v&0x7FFF, pb)
		return
	}
	cell := *m.cellPtr(addr)
	mbf.G.Write(cell.data)
	m.par.G15.Write(cell.parity)
	m.par.Check(cell.data&0x7FFF, cell.parity)
}

// Store is the cycle-accurate path used by the WE control pulse. It
// takes the write-bus value directly rather than chaining through MBF.G:
// a WG firing in the same TP's write phase only stages G's shadow, which
// a sibling pulse cannot read back until the next TP boundary. Store
// itself stages the write-bus value into G (for display/the next TP's
// RG) and applies it to memory, computing fresh parity exactly as
// WriteMemory does.
func (m *MEM) Store(mbf *MBF, busValue uint16, addr uint16) {
	mbf.G.Write(busValue)
	if m.isOverlay(addr) {
		m.writeOverlay(addr, busValue)
		return
	}
	if m.isFixed(addr) {
		return
	}
	data := busValue & 0x7FFF
	m.par.G15.Write(m.par.ComputeParity(data))
	m.eraseable[addr] = memCell{data: data, parity: m.par.ComputeParity(data)}
}

func (m *MEM) readOverlay(addr uint16) uint16 {
	switch addr {
	case addrA:
		return m.crg.A.Read()
	case addrQ:
		return m.crg.Q.Read()
	case addrZ:
		return m.crg.Z.Read()
	case addrLP:
		return m.crg.LP.Read()
	case addrIN0:
		return m.io.IN0.Read()
	case addrIN1:
		return m.io.IN1.Read()
	case addrIN2:
		return m.io.IN2.Read()
	case addrIN3:
		return m.io.IN3.Read()
	case addrOUT1:
		return m.io.OUT1.Read()
	case addrOUT2:
		return m.io.OUT2.Read()
	case addrOUT3:
		return m.io.OUT3.Read()
	case addrOUT4:
		return m.io.OUT4.Read()
	case addrBANK:
		return m.adr.BANK.Read()
	default:
		return 0 // OUT0 gap, RELINT/INHINT (write-only)
	}
}

func (m *MEM) writeOverlay(addr uint16, v uint16) {
	switch addr {
	case addrA:
		m.crg.A.Set(v)
	case addrQ:
		m.crg.Q.Set(v)
	case addrZ:
		m.crg.Z.Set(v)
	case addrLP:
		m.crg.LP.Set(v)
	case addrOUT1:
		m.io.OUT1.Set(v)
	case addrOUT2:
		m.io.OUT2.Set(v)
	case addrOUT3:
		m.io.OUT3.Set(v)
	case addrOUT4:
		m.io.OUT4.Set(v)
	case addrBANK:
		m.adr.BANK.Set(v)
	case addrRELINT, addrINHINT:
		// handled by the INH/RELINT control pulses, not a direct memory
		// write; a bare WriteMemory to these addresses has no effect.
	default:
		// addrIN0..IN3, addrOUT0Gap: hardware-driven or deleted; ignore.
	}
}
