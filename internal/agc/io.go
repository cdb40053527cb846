package agc

// IO owns the input and output registers. OUT0 was
// deleted in original_source's v1.12 ("did not provide any useful
// function, anyway" -- it shadowed the DSKY address without effect), so
// only OUT1..OUT4 exist here; the memory overlay for that address is left
// unmapped rather than resurrecting a dead register.
type IO struct {
	IN0, IN1, IN2, IN3     *Register
	OUT1, OUT2, OUT3, OUT4 *Register
}

func NewIO() *IO {
	return &IO{
		IN0: NewRegister(16), IN1: NewRegister(16), IN2: NewRegister(16), IN3: NewRegister(16),
		OUT1: NewRegister(16), OUT2: NewRegister(16), OUT3: NewRegister(16), OUT4: NewRegister(16),
	}
}

func (io *IO) Commit() {
	io.IN0.Commit()
	io.IN1.Commit()
	io.IN2.Commit()
	io.IN3.Commit()
	io.OUT1.Commit()
	io.OUT2.Commit()
	io.OUT3.Commit()
	io.OUT4.Commit()
}

func (io *IO) Reset() {
	io.IN0.Clear()
	io.IN1.Clear()
	io.IN2.Clear()
	io.IN3.Clear()
	io.OUT1.Clear()
	io.OUT2.Clear()
	io.OUT3.Clear()
	io.OUT4.Clear()
}
