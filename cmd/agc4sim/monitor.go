package main

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// startMonitor serves a live runtime dashboard (goroutines, heap, GC
// pause) at addr while a long run is in progress, backing the run
// command's --monitor flag. It reports Go runtime health alongside the
// simulation, not AGC register state -- statsview's viewer only knows
// about the process it's embedded in, and threading simulator state into
// it would mean hand-rolling a custom metrics source this tool doesn't
// need for a debugging aid.
func startMonitor(addr string) func() {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	vm := statsview.New()
	go vm.Start()
	return func() {}
}
