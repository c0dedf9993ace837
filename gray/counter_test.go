package gray

import (
	stderrors "errors"
	"testing"

	"github.com/signalsim/cdc-runtime/errors"
)

func TestNewCounter_WidthValidation(t *testing.T) {
	if _, err := NewWriteCounter(0); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidWidth}) {
		t.Fatalf("addrBits 0: got %v, want invalid_width", err)
	}
	if _, err := NewReadCounter(64); err == nil {
		t.Fatal("addrBits 64 should be rejected")
	}
	if _, err := NewWriteCounter(1); err != nil {
		t.Fatalf("addrBits 1 should be accepted: %v", err)
	}
}

func TestCounter_InitialState(t *testing.T) {
	w, err := NewWriteCounter(2)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewReadCounter(2)
	if err != nil {
		t.Fatal(err)
	}

	if out := w.Observe(); out.Flag || out.Addr != 0 || out.Ptr != 0 {
		t.Fatalf("write counter reset state: %+v", out)
	}
	// The read side comes up empty.
	if out := r.Observe(); !out.Flag || out.Addr != 0 || out.Ptr != 0 {
		t.Fatalf("read counter reset state: %+v", out)
	}
}

func TestCounter_OutputStateSkew(t *testing.T) {
	c, _ := NewWriteCounter(2)

	// Outputs for the tick reflect the pre-advance state.
	before := c.Observe()
	c = c.Advance(true, 0)
	after := c.Observe()

	if before.Addr != 0 || before.Ptr != 0 {
		t.Fatalf("pre-advance outputs: %+v", before)
	}
	if after.Addr != 1 || after.Ptr != Encode(1) {
		t.Fatalf("post-advance outputs: %+v", after)
	}
}

func TestCounter_GateHoldsPointer(t *testing.T) {
	c, _ := NewWriteCounter(2)

	// No request: pointer holds.
	c = c.Advance(false, 0)
	if c.Binary() != 0 {
		t.Fatalf("pointer advanced without request: %d", c.Binary())
	}

	// Fill to capacity; the 5th request must be dropped.
	for i := 0; i < 4; i++ {
		c = c.Advance(true, 0)
	}
	if !c.Observe().Flag {
		t.Fatal("full flag not asserted after 4 writes into depth-4 buffer")
	}
	if c.Binary() != 4 {
		t.Fatalf("binary pointer = %d, want 4", c.Binary())
	}
	c = c.Advance(true, 0)
	if c.Binary() != 4 {
		t.Fatalf("gated-off request advanced pointer to %d", c.Binary())
	}
}

func TestCounter_FullRuleTracksRemote(t *testing.T) {
	c, _ := NewWriteCounter(2)
	for i := 0; i < 4; i++ {
		c = c.Advance(true, 0)
	}
	if !c.Observe().Flag {
		t.Fatal("expected full")
	}

	// One synchronized read frees a slot: full deasserts on the next
	// advance, even without a write request.
	remote := Encode(1)
	c = c.Advance(false, remote)
	if c.Observe().Flag {
		t.Fatal("full flag stuck after remote pointer moved")
	}
}

func TestCounter_EmptyRuleTracksRemote(t *testing.T) {
	c, _ := NewReadCounter(2)

	// Remote write pointer moves ahead: empty deasserts.
	c = c.Advance(true, Encode(2)) // request gated off while still empty
	if c.Binary() != 0 {
		t.Fatal("read advanced while empty")
	}
	if c.Observe().Flag {
		t.Fatal("empty flag should have deasserted")
	}

	// Catch up to the remote pointer: empty reasserts after the final
	// read, not before.
	c = c.Advance(true, Encode(2))
	if c.Observe().Flag {
		t.Fatal("empty asserted with one element left")
	}
	c = c.Advance(true, Encode(2))
	if !c.Observe().Flag {
		t.Fatal("empty not asserted after draining")
	}
	if c.Binary() != 2 {
		t.Fatalf("binary pointer = %d, want 2", c.Binary())
	}
}

func TestCounter_WrapAround(t *testing.T) {
	// Drive write and read in lockstep through several laps; flags must
	// never assert and the address must walk the buffer cyclically.
	w, _ := NewWriteCounter(2)
	r, _ := NewReadCounter(2)

	for i := 0; i < 40; i++ {
		wantAddr := uint64(i % 4)
		if out := w.Observe(); out.Addr != wantAddr {
			t.Fatalf("step %d: write addr = %d, want %d", i, out.Addr, wantAddr)
		}
		// Write one element, then immediately read it.
		w = w.Advance(true, r.Observe().Ptr)
		r = r.Advance(true, w.Observe().Ptr)
		if w.Observe().Flag {
			t.Fatalf("step %d: spurious full", i)
		}
	}
}
