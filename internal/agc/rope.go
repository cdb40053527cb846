package agc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LoadRope parses the object-file format ("%06o %06o\n" per line:
// address then data, both octal) and loads each word via MEM's
// LoadWord, which is permitted to write fixed memory. Blank lines and
// lines starting with "#" are skipped, so a fixture file can carry
// comment-annotated sections.
//
// Parsing stops at the first line that doesn't match the format, or
// whose address falls outside the memory map; every word from a
// preceding line has already landed in memory and is not rolled back.
// The returned error wraps ErrRopeLoad and names the 1-indexed line
// number.
func LoadRope(mem *MEM, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var addr, data uint32
		if _, err := fmt.Sscanf(line, "%o %o", &addr, &data); err != nil {
			return fmt.Errorf("%w: line %d: %q: %v", ErrRopeLoad, lineNo, line, err)
		}
		if addr > 0xFFFF || !mem.ValidAddress(uint16(addr)) {
			return fmt.Errorf("%w: %w: line %d: address %06o out of range", ErrRopeLoad, ErrInvalidAddress, lineNo, addr)
		}
		mem.LoadWord(uint16(addr), uint16(data))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrRopeLoad, lineNo+1, err)
	}
	return nil
}
