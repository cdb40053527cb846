package agc

import "errors"

// Sentinel errors. Callers use errors.Is against these; wrapped errors
// carry the offending line number or address via fmt.Errorf's %w, not a
// bespoke error struct hierarchy.
var (
	// ErrRopeLoad is returned by LoadRope when a line in the object file
	// doesn't parse as "%06o %06o", or names an address LoadRope can't
	// place. The loader stops at the first bad line; words loaded from
	// every preceding line stay in memory.
	ErrRopeLoad = errors.New("agc: rope load failed")

	// ErrUnknownPulse is a programmer error: ValidateCPM found a pulse code
	// in the CPM table that is not a ControlPulse constant. It should never
	// surface against a rope under test; it indicates cpm.go and pulses.go
	// have drifted apart.
	ErrUnknownPulse = errors.New("agc: unknown control pulse")

	// ErrInvalidAddress is wrapped into LoadRope's error when a rope
	// line names an address past the end of the memory map (see
	// MEM.ValidAddress); the Core API's own ReadMemory/WriteMemory take
	// addr uint16 directly and don't return errors at all.
	ErrInvalidAddress = errors.New("agc: address out of range")
)
