package agc

// MON is the monitor/front-panel subsystem: a bag of mode switches the
// TUI/REPL collaborator sets, plus pure observation of everything else.
// MON never drives a control pulse; CLK and TPG read these booleans
// directly.
type MON struct {
	PURST bool // power-up reset; true initially
	RUN   bool // run/halt switch
	STEP  bool // single-step switch
	INST  bool // instruction/sequence-step select
	FCLK  bool // free-running clock mode
	SA    bool // "standby allowed"

	SCLEnab bool // scaler enable (original_source v1.14)

	singleClock bool // armed by the driver for one-shot F1 stepping
}

// NewMON returns the power-up default switch state: PURST=1 initially,
// SCL_ENAB defaults on, INST defaults on (matching original_source's
// MON.cpp static initializers).
func NewMON() *MON {
	return &MON{
		PURST:   true,
		INST:    true,
		SCLEnab: true,
	}
}

// ArmSingleClock arms a one-shot flag, the front panel's single-pulse
// "F1" pushbutton. The next Step consumes it: a TPG parked in WAIT moves
// to TP1, and a TPG at TP12 with RUN and FCLK off goes on to TP1 instead
// of WAIT. It does not limit the run to one TP; once out of WAIT, the
// following Steps run TP1..TP12 without re-arming.
func (m *MON) ArmSingleClock() { m.singleClock = true }

// ConsumeSingleClock reports whether a single clock was armed and clears
// the arming flag; called once per Step().
func (m *MON) ConsumeSingleClock() bool {
	v := m.singleClock
	m.singleClock = false
	return v
}
