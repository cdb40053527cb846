package agc

// eraseableBoundary (02000 octal) is the first fixed-memory S value;
// below it S addresses eraseable directly.
const eraseableBoundary = 02000

// offsetMask isolates the low 10 bits of S that form CADR's offset field.
const offsetMask = 0o1777 // 10 bits

// ADR owns the S (operand address) and BANK registers and computes the
// effective address. Address 17 (octal) is wired by MEM as an
// alias for BANK itself (a documented divergence from the overlay table
// shown in original_source's MON.cpp display -- see DESIGN.md).
//
// BANK is 5 bits, not the 4 bits a nominal "14-bit CADR" figure would
// imply: a 4-bit bank only reaches 16KW of fixed memory, short of the
// required 24KW-plus floor. BANK 0..37(oct) reaches 32KW, matching real
// Block I hardware; "14-bit CADR" survives only as a common-case display
// label. See DESIGN.md's Open Question resolution.
type ADR struct {
	S    *Register // 15 bits: holds the raw operand address operand
	BANK *Register // 5 bits: selects a fixed-memory bank
}

func NewADR() *ADR {
	return &ADR{
		S:    NewRegister(15),
		BANK: NewRegister(5),
	}
}

// EffectiveAddress computes CADR from the committed S/BANK values.
//
// This adds the eraseableBoundary base that a literal "(BANK<<10) |
// S[9:0]" formula omits. Taken literally, that formula puts every bank's
// offset-0 word at flat address 0, which collides with the A register's
// overlay slot and contradicts the fixed-memory self-loop scenario (a
// rope "TC 2000" living IN fixed memory, at fixed address 02000 itself,
// must still read as CADR 02000 with BANK==0 after reset). Resolved by
// adding the base -- see DESIGN.md's Open Question entry.
func (a *ADR) EffectiveAddress() uint16 {
	s := a.S.Read()
	if s >= eraseableBoundary {
		return eraseableBoundary + (a.BANK.Read() << 10) + (s & offsetMask)
	}
	return s & offsetMask
}

func (a *ADR) Commit() {
	a.S.Commit()
	a.BANK.Commit()
}

func (a *ADR) Reset() {
	a.S.Clear()
	a.BANK.Clear()
}
