package agc

import (
	"testing"

	"github.com/matryer/is"
)

func TestInterruptPriorityLowestIndexFirst(t *testing.T) {
	is := is.New(t)
	in := &INT{}
	in.Request(RuptDSRUPT)
	in.Request(RuptT3RUPT)
	vec, ok := in.SelectGrant()
	is.True(ok)
	is.Equal(vec, RuptT3RUPT)
}

func TestInterruptInhibitedByINHINT(t *testing.T) {
	is := is.New(t)
	in := &INT{}
	in.INHINT = true
	in.Request(RuptKEYRUPT)
	_, ok := in.SelectGrant()
	is.True(!ok)
}

func TestInterruptGrantClearsRequestAndSetsRPCELL(t *testing.T) {
	is := is.New(t)
	in := &INT{}
	in.Request(RuptKEYRUPT)
	vec, ok := in.SelectGrant()
	is.True(ok)
	in.Grant(vec)
	is.Equal(in.RPCELL, uint8(RuptKEYRUPT))
	is.True(!in.Rupt[RuptKEYRUPT])
}

func TestInterruptResumeClearsRPCELL(t *testing.T) {
	is := is.New(t)
	in := &INT{}
	in.RPCELL = RuptKEYRUPT
	in.Resume()
	is.Equal(in.RPCELL, uint8(RuptNone))
}
