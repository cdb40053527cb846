package agc

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// DumpCPM renders the control pulse matrix as a Graphviz graph of the
// live Go data structure (the single source of truth, made visible
// rather than re-derived into a second table some future edit could
// drift from). cmd/agc4sim's dump-cpm subcommand is the only caller.
func DumpCPM(w io.Writer) {
	memviz.Map(w, &cpmTable)
}
