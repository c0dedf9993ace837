package gray

import (
	"github.com/signalsim/cdc-runtime/errors"
)

// Pointers carry one wrap bit beyond the address bits so that a full buffer
// is distinguishable from an empty one when both pointers coincide modulo
// the depth. A lap of exactly one buffer traversal flips the pointer's most
// significant binary bit, which in Gray code flips the top two bits; the
// full rule exploits that instead of widening the comparator.
const (
	wrapBits = 1
	maxWidth = 64
)

// FlagRule selects how a counter computes its status flag from its own
// freshly advanced Gray pointer and the synchronized remote pointer.
type FlagRule int

const (
	// RuleEmpty asserts when the local pointer has caught up with the
	// remote write pointer: nothing left to read.
	RuleEmpty FlagRule = iota
	// RuleFull asserts when the local pointer has lapped the remote read
	// pointer by exactly one buffer traversal, detected by comparing
	// against the remote pointer with its top two Gray bits inverted.
	RuleFull
)

func (r FlagRule) holds(ptr, remote uint64, width uint) bool {
	if r == RuleFull {
		remote ^= 3 << (width - 2)
	}
	return ptr == remote
}

// Outputs are a counter's pre-transition outputs for the current tick.
type Outputs struct {
	// Flag is the full (write side) or empty (read side) status.
	Flag bool
	// Addr is the memory address: the low addrBits of the binary pointer.
	Addr uint64
	// Ptr is the Gray-coded pointer, the only value that may cross into
	// the other clock domain.
	Ptr uint64
}

// Counter is the modular pointer counter paired with its Gray image and
// status flag. It is a value type: Advance returns the successor state, so
// a Counter can be registered as clocked state or stepped directly in
// tests. The outputs exposed for a tick come from Observe on the state
// *before* that tick's Advance; memory addressing and full/empty timing
// depend on that skew.
type Counter struct {
	width    uint // addrBits + wrapBits
	addrMask uint64
	ptrMask  uint64
	bin      uint64
	gray     uint64
	flag     bool
	rule     FlagRule
}

// NewReadCounter creates the read-side counter over a 2^addrBits-deep
// buffer. Its flag is the empty flag and starts asserted.
func NewReadCounter(addrBits int) (Counter, error) {
	return newCounter(addrBits, RuleEmpty, true)
}

// NewWriteCounter creates the write-side counter over a 2^addrBits-deep
// buffer. Its flag is the full flag and starts deasserted.
func NewWriteCounter(addrBits int) (Counter, error) {
	return newCounter(addrBits, RuleFull, false)
}

func newCounter(addrBits int, rule FlagRule, flag bool) (Counter, error) {
	// The full rule inverts two Gray bits, so the pointer needs at least
	// two: one address bit minimum.
	if addrBits < 1 || addrBits+wrapBits > maxWidth {
		return Counter{}, errors.InvalidWidth(errors.PhaseConfig, "gray counter",
			addrBits, 1, maxWidth-wrapBits)
	}
	width := uint(addrBits + wrapBits)
	return Counter{
		width:    width,
		addrMask: 1<<uint(addrBits) - 1,
		ptrMask:  1<<width - 1,
		flag:     flag,
		rule:     rule,
	}, nil
}

// Observe returns the counter's outputs for the current tick: last tick's
// flag, the pre-advance address, and the pre-advance Gray pointer.
func (c Counter) Observe() Outputs {
	return Outputs{
		Flag: c.flag,
		Addr: c.bin & c.addrMask,
		Ptr:  c.gray,
	}
}

// Binary returns the full-width binary pointer. Observational only; tests
// and the occupancy probe use it, the crossing logic never does.
func (c Counter) Binary() uint64 { return c.bin }

// Width returns the pointer width in bits.
func (c Counter) Width() int { return int(c.width) }

// Advance computes the state for the next tick. The pointer increments only
// when request is asserted and the flag is clear; the new flag already
// reflects this tick's request, while the outputs observed this tick do
// not.
func (c Counter) Advance(request bool, remote uint64) Counter {
	if request && !c.flag {
		c.bin = (c.bin + 1) & c.ptrMask
	}
	c.gray = Encode(c.bin)
	c.flag = c.rule.holds(c.gray, remote, c.width)
	return c
}
