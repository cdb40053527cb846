package agc

import (
	"testing"

	"github.com/matryer/is"
)

func newTestMEM() (*MEM, *CRG, *IO, *ADR, *PAR) {
	crg := NewCRG()
	io := NewIO()
	adr := NewADR()
	par := NewPAR()
	return NewMEM(crg, io, adr, par), crg, io, adr, par
}

func TestMemoryEraseableWriteReadRoundTrip(t *testing.T) {
	is := is.New(t)
	mem, _, _, _, _ := newTestMEM()
	mem.WriteMemory(0o0100, 0o12345)
	is.Equal(mem.ReadMemory(0o0100), uint16(0o12345))
}

func TestMemoryFixedWriteSilentlyDropped(t *testing.T) {
	is := is.New(t)
	mem, _, _, _, _ := newTestMEM()
	mem.LoadWord(eraseableBoundary, 0o4321) // rope load: permitted
	is.Equal(mem.ReadMemory(eraseableBoundary), uint16(0o4321))

	mem.WriteMemory(eraseableBoundary, 0o0001) // runtime write: dropped
	is.Equal(mem.ReadMemory(eraseableBoundary), uint16(0o4321))
}

func TestMemoryOverlayAliasesRegisters(t *testing.T) {
	is := is.New(t)
	mem, crg, _, _, _ := newTestMEM()
	mem.WriteMemory(addrA, 0o7777)
	is.Equal(crg.A.Read(), uint16(0o7777))
	is.Equal(mem.ReadMemory(addrA), uint16(0o7777))
}

func TestMemoryBankOverlayAliasesADR(t *testing.T) {
	is := is.New(t)
	mem, _, _, adr, _ := newTestMEM()
	mem.WriteMemory(addrBANK, 5)
	is.Equal(adr.BANK.Read(), uint16(5))
	is.Equal(mem.ReadMemory(addrBANK), uint16(5))
}

func TestMemoryInjectParityFaultFlipsOnlyParity(t *testing.T) {
	is := is.New(t)
	mem, _, _, _, _ := newTestMEM()
	mem.WriteMemory(0o0200, 0o1111)
	mem.InjectParityFault(0o0200)
	is.Equal(mem.ReadMemory(0o0200), uint16(0o1111))
	is.Equal(mem.cellPtr(0o0200).parity, mem.par.ComputeParity(0o1111)^1)
}

func TestMemoryFetchDetectsInjectedFault(t *testing.T) {
	is := is.New(t)
	mem, _, _, _, par := newTestMEM()
	mbf := NewMBF()
	mem.WriteMemory(0o0300, 0o2222)
	mem.InjectParityFault(0o0300)

	mem.Fetch(mbf, 0o0300)

	is.True(par.PALM)
}
