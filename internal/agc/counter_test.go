package agc

import (
	"testing"

	"github.com/matryer/is"
)

func TestCounterPrioritySelectsLowestIndex(t *testing.T) {
	is := is.New(t)
	c := &CTR{}
	c.RequestUp(CtrTIME3)
	c.RequestUp(CtrTIME1)
	idx, up, ok := c.Select()
	is.True(ok)
	is.Equal(idx, CtrTIME1)
	is.True(up)
}

func TestCounterUpBeatsDownOnTie(t *testing.T) {
	is := is.New(t)
	c := &CTR{}
	c.RequestDown(CtrTIME1)
	c.RequestUp(CtrTIME1)
	idx, up, ok := c.Select()
	is.True(ok)
	is.Equal(idx, CtrTIME1)
	is.True(up)
}

func TestCounterServiceClearsOnlyThatRequest(t *testing.T) {
	is := is.New(t)
	c := &CTR{}
	c.RequestUp(CtrTIME1)
	c.RequestUp(CtrTIME3)
	c.Service(CtrTIME1, true)
	is.True(c.Pending())
	idx, _, _ := c.Select()
	is.Equal(idx, CtrTIME3)
}

func TestTIME1OverflowCascadesToTIME2(t *testing.T) {
	is := is.New(t)
	a := New()
	a.MEM.WriteMemory(counterAddr[CtrTIME1], 0x7FFF)
	a.CTR.RequestUp(CtrTIME1)

	a.clk.servicePendingCounter()

	is.Equal(a.MEM.ReadMemory(counterAddr[CtrTIME1]), uint16(0))
	is.True(a.CTR.UpCELL&(1<<CtrTIME2) != 0)
}
