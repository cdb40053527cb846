package agc

import (
	"testing"

	"github.com/matryer/is"
)

func TestRegisterShadowCommit(t *testing.T) {
	is := is.New(t)
	r := NewRegister(16)

	r.Write(0x1234)
	is.Equal(r.Read(), uint16(0)) // not visible before Commit

	r.Commit()
	is.Equal(r.Read(), uint16(0x1234))
}

func TestRegisterCommitWithoutWriteIsNoOp(t *testing.T) {
	is := is.New(t)
	r := NewRegister(8)
	r.Write(0xFF)
	r.Commit()
	is.Equal(r.Read(), uint16(0xFF))

	r.Commit() // nothing staged; value persists
	is.Equal(r.Read(), uint16(0xFF))
}

func TestRegisterWriteMasksToWidth(t *testing.T) {
	is := is.New(t)
	r := NewRegister(5)
	r.Write(0xFFFF)
	r.Commit()
	is.Equal(r.Read(), uint16(0x1F))
}

func TestRegisterClearBypassesShadow(t *testing.T) {
	is := is.New(t)
	r := NewRegister(16)
	r.Write(0x7FFF)
	r.Clear()
	is.Equal(r.Read(), uint16(0))
	r.Commit() // the pending write before Clear must not resurrect
	is.Equal(r.Read(), uint16(0))
}

func TestRegisterSetIsImmediate(t *testing.T) {
	is := is.New(t)
	r := NewRegister(16)
	r.Set(0xBEEF)
	is.Equal(r.Read(), uint16(0xBEEF))
}

func TestNewRegisterRejectsInvalidWidth(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()
	NewRegister(6)
}
