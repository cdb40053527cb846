package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalWidth reports the column width of fd if it's a terminal. ok is
// false for a redirected/piped stdout, in which case the caller should
// fall back to a fixed-width trace format rather than guessing.
func terminalWidth(fd uintptr) (width int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}
	return int(ws.Col), true
}

// wideTraceWidth is the column count the run command's trace line needs
// to also show the OUT1-4 lamp/driver words; anything narrower prints
// only the core register columns.
const wideTraceWidth = 100

func traceIsWide() bool {
	w, ok := terminalWidth(os.Stdout.Fd())
	return ok && w >= wideTraceWidth
}
