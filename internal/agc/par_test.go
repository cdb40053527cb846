package agc

import (
	"testing"

	"github.com/matryer/is"
)

func TestParityComputeAndCheckRoundTrip(t *testing.T) {
	is := is.New(t)
	p := NewPAR()
	data := uint16(0x2A2A) & 0x7FFF
	bit := p.ComputeParity(data)
	p.Check(data, bit)
	p.Commit() // P is staged by Check; it reads back only after Commit
	is.True(!p.PALM)
	is.Equal(p.P.Read(), uint16(1))
}

func TestParityMismatchLatchesPALM(t *testing.T) {
	is := is.New(t)
	p := NewPAR()
	data := uint16(0x2A2A) & 0x7FFF
	bit := p.ComputeParity(data)
	p.Check(data, bit^1) // flip the parity bit passed to Check
	p.Commit()
	is.True(p.PALM)
	is.Equal(p.P.Read(), uint16(0))
}

func TestPALMSurvivesReset(t *testing.T) {
	is := is.New(t)
	p := NewPAR()
	p.PALM = true
	p.Reset()
	is.True(p.PALM)
	p.ClearPALM()
	is.True(!p.PALM)
}
