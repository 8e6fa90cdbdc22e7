package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// wordSize is the size, in bytes, of a single frame slot (one 64-bit
// signed integer — the language's only type).
const wordSize = 8

// SymbolTable is a per-function, flat mapping from identifier to frame
// slot. It is deliberately NOT a stack of nested scopes: spec.md's grammar
// has braces, but a name declared inside an `if` body stays live for the
// rest of the enclosing function. Offsets are assigned monotonically
// starting at 1 and are never reused.
type SymbolTable struct {
	offsets map[string]int
	order   []string
	next    int
}

// NewSymbolTable returns an empty table for one function.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{offsets: make(map[string]int)}
}

// Lookup returns the frame-slot offset for name and whether it was found.
func (s *SymbolTable) Lookup(name string) (int, bool) {
	off, ok := s.offsets[name]
	return off, ok
}

// Define assigns the next free offset to name if it is not already defined,
// and returns the (possibly pre-existing) offset. Re-defining a name already
// in the table is not an error: it is how parameters, explicit "int x"
// declarations and implicit declare-on-assign all converge on one slot.
func (s *SymbolTable) Define(name string) int {
	if off, ok := s.offsets[name]; ok {
		return off
	}
	s.next++
	s.offsets[name] = s.next
	s.order = append(s.order, name)
	return s.next
}

// FrameSlots is the number of distinct slots reserved for this function —
// the prologue subtracts 8*FrameSlots, rounded up to a multiple of 16.
func (s *SymbolTable) FrameSlots() int {
	return s.next
}

// String returns a deterministically ordered dump, used by debug tooling.
func (s *SymbolTable) String() string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-16s offset %d\n", name, s.offsets[name])
	}
	return sb.String()
}
