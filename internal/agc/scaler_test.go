package agc

import (
	"testing"

	"github.com/matryer/is"
)

func TestScalerAdvanceIsGatedBySCLEnab(t *testing.T) {
	is := is.New(t)
	s := &SCL{}
	s.Advance(false)
	is.Equal(s.SCLValue(), uint16(0))
	s.Advance(true)
	is.Equal(s.SCLValue(), uint16(1))
}

func TestScalerF10RisesAtExpectedCount(t *testing.T) {
	is := is.New(t)
	s := &SCL{}
	roseAt := -1
	for i := 0; i < f10Bit*2; i++ {
		s.Advance(true)
		if s.F10Rose() {
			roseAt = i
			break
		}
	}
	is.Equal(roseAt, f10Bit)
}
