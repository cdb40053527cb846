// agc4sim drives the AGC4 simulator core from the command line.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/blockone/agc4sim/internal/agc"
)

func main() {
	var cli struct {
		Run     runCmd     `cmd:"" default:"1" help:"Load a rope image and run it for a fixed number of clocks."`
		DumpCPM dumpCPMCmd `cmd:"" name:"dump-cpm" help:"Render the control pulse matrix as a Graphviz graph."`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	Rope       string `arg:"" type:"existingfile" help:"Path to a rope object file (\"%06o %06o\" per line)."`
	Start      uint16 `name:"start" default:"0" help:"Initial Z (program counter) value."`
	Clocks     int    `name:"clocks" default:"1000" help:"Number of CLK pulses to run."`
	Trace      bool   `name:"trace" help:"Print a monitor snapshot after every CLK pulse."`
	Monitor    string `name:"monitor" help:"Serve a live runtime dashboard at this address, e.g. :6060."`
	BreakCADR  string `name:"break-cadr" help:"Halt just before the effective address given (octal) is next fetched."`
	Watch      string `name:"watch" help:"Halt the instant the eraseable word at this address (octal) changes."`
}

// parseOctalAddr parses an octal address flag; an empty string means "not
// set", reported via ok=false rather than an error, since break-cadr/watch
// are both optional.
func parseOctalAddr(s string) (addr uint16, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 8, 16)
	if err != nil {
		return 0, false, fmt.Errorf("bad octal address %q: %w", s, err)
	}
	return uint16(v), true, nil
}

func (r *runCmd) Run() error {
	a := agc.New()

	f, err := os.Open(r.Rope)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := a.LoadRope(f); err != nil {
		return err
	}

	a.CRG.Z.Set(r.Start)
	a.SetSwitch("PURST", false)
	a.SetSwitch("RUN", true)

	if r.Monitor != "" {
		startMonitor(r.Monitor)
	}

	breakCADR, breakSet, err := parseOctalAddr(r.BreakCADR)
	if err != nil {
		return err
	}
	watchAddr, watchSet, err := parseOctalAddr(r.Watch)
	if err != nil {
		return err
	}
	var watchLast uint16
	if watchSet {
		watchLast = a.ReadMemory(watchAddr)
	}

	wide := r.Trace && traceIsWide()
	clocksRun := r.Clocks
	for i := 0; i < r.Clocks; i++ {
		// Break-before-CADR: stop before TP1 of the instruction whose
		// effective address is the breakpoint, not after -- so the driver
		// sees the machine poised to fetch it rather than already past it.
		if breakSet && a.ADR.EffectiveAddress() == breakCADR && a.Snapshot().TPState == "TP1" {
			fmt.Printf("break: CADR=%06o reached after %d clocks\n", breakCADR, i)
			clocksRun = i
			break
		}

		a.Step()

		if watchSet {
			if v := a.ReadMemory(watchAddr); v != watchLast {
				fmt.Printf("watch: %06o changed %06o -> %06o after %d clocks\n", watchAddr, watchLast, v, i+1)
				watchLast = v
				clocksRun = i + 1
				break
			}
		}

		if !r.Trace {
			continue
		}
		v := a.Snapshot()
		if wide {
			fmt.Printf("%-6s %-5s A=%06o Q=%06o Z=%04o S=%05o BANK=%02o SCL=%05o OUT1=%06o OUT2=%06o OUT3=%06o OUT4=%06o\n",
				v.TPState, v.Subseq, v.A, v.Q, v.Z, v.S, v.BANK, v.SCL, v.OUT1, v.OUT2, v.OUT3, v.OUT4)
		} else {
			fmt.Printf("%-6s %-5s A=%06o Q=%06o Z=%04o S=%05o BANK=%02o SCL=%05o\n",
				v.TPState, v.Subseq, v.A, v.Q, v.Z, v.S, v.BANK, v.SCL)
		}
	}

	v := a.Snapshot()
	fmt.Printf("halted after %d clocks: A=%06o Q=%06o Z=%04o PALM=%v\n", clocksRun, v.A, v.Q, v.Z, v.PALM)
	return nil
}

type dumpCPMCmd struct {
	Out string `name:"out" default:"-" help:"Output path for the Graphviz .dot file, or - for stdout."`
}

func (d *dumpCPMCmd) Run() error {
	if err := agc.ValidateCPM(); err != nil {
		return err
	}
	if d.Out == "-" {
		agc.DumpCPM(os.Stdout)
		return nil
	}
	f, err := os.Create(d.Out)
	if err != nil {
		return err
	}
	defer f.Close()
	agc.DumpCPM(f)
	return nil
}
