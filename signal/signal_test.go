package signal

import (
	"testing"
)

func TestRegister_DelayByOneTick(t *testing.T) {
	d := NewDomain("clk")
	in := NewInput(d, 0)
	out := Register(d, -1, in.Signal())

	// First tick emits the initial value.
	if got := out.Read(); got != -1 {
		t.Fatalf("tick 0: got %d, want -1", got)
	}

	for tick, v := range []int{10, 20, 30} {
		in.Set(v)
		d.Tick()
		if got := out.Read(); got != v {
			t.Fatalf("tick %d: got %d, want %d", tick+1, got, v)
		}
	}
}

func TestRegister_ChainShiftsOnePerTick(t *testing.T) {
	d := NewDomain("clk")
	in := NewInput(d, 0)
	// Two-stage chain: output must lag the input by exactly 2 ticks even
	// though the second register was created after the first.
	out := Register(d, 0, Register(d, 0, in.Signal()))

	in.Set(7)
	d.Tick()
	if got := out.Read(); got != 0 {
		t.Fatalf("after 1 tick: got %d, want 0", got)
	}
	d.Tick()
	if got := out.Read(); got != 7 {
		t.Fatalf("after 2 ticks: got %d, want 7", got)
	}
}

func TestTick_TwoPhaseCommit(t *testing.T) {
	// Cross-coupled registers must exchange values every tick. If inputs
	// were sampled after commits started, both would converge instead.
	d := NewDomain("clk")

	var a, b Signal[int]
	a = Register(d, 1, Lift(d, func() int { return b.Read() }))
	b = Register(d, 2, Lift(d, func() int { return a.Read() }))

	d.Tick()
	if a.Read() != 2 || b.Read() != 1 {
		t.Fatalf("after 1 tick: a=%d b=%d, want a=2 b=1", a.Read(), b.Read())
	}
	d.Tick()
	if a.Read() != 1 || b.Read() != 2 {
		t.Fatalf("after 2 ticks: a=%d b=%d, want a=1 b=2", a.Read(), b.Read())
	}
}

func TestState_ObservesPreTransitionState(t *testing.T) {
	d := NewDomain("clk")
	inc := NewInput(d, false)
	incSig := inc.Signal()

	count := State(d, 0, func(c int) int {
		if incSig.Read() {
			return c + 1
		}
		return c
	})

	inc.Set(true)
	// The observed value in a given tick is the state before that tick's
	// input is applied.
	if got := count.Read(); got != 0 {
		t.Fatalf("tick 0: got %d, want 0", got)
	}
	d.Tick()
	if got := count.Read(); got != 1 {
		t.Fatalf("tick 1: got %d, want 1", got)
	}

	inc.Set(false)
	d.Tick()
	if got := count.Read(); got != 1 {
		t.Fatalf("tick 2: got %d, want 1", got)
	}
}

func TestDomain_Reset(t *testing.T) {
	d := NewDomain("clk")
	in := NewInput(d, 5)
	out := Register(d, 0, in.Signal())

	d.Tick()
	d.Tick()
	if out.Read() != 5 || d.Ticks() != 2 {
		t.Fatalf("precondition failed: out=%d ticks=%d", out.Read(), d.Ticks())
	}

	d.Reset()
	if got := out.Read(); got != 0 {
		t.Fatalf("after reset: got %d, want 0", got)
	}
	if d.Ticks() != 0 {
		t.Fatalf("after reset: ticks=%d, want 0", d.Ticks())
	}

	// Resumes normally from the first tick after reset.
	d.Tick()
	if got := out.Read(); got != 5 {
		t.Fatalf("first tick after reset: got %d, want 5", got)
	}
}

func TestUnsafeSynchronizer_SamplesCurrentSourceValue(t *testing.T) {
	src := NewDomain("src")
	dst := NewDomain("dst")

	in := NewInput(src, 0)
	held := Register(src, 0, in.Signal())
	crossed := UnsafeSynchronizer(src, dst, held)

	if crossed.Domain() != dst {
		t.Fatal("crossed signal should carry the destination domain")
	}

	in.Set(9)
	// Destination ticks do not advance source state; the sample only
	// changes when the source domain commits.
	dst.Tick()
	dst.Tick()
	if got := crossed.Read(); got != 0 {
		t.Fatalf("before src tick: got %d, want 0", got)
	}
	src.Tick()
	if got := crossed.Read(); got != 9 {
		t.Fatalf("after src tick: got %d, want 9", got)
	}
}

func TestProcess_CommitAfterCapture(t *testing.T) {
	d := NewDomain("clk")
	in := NewInput(d, 0)
	sig := in.Signal()

	var captured, committed int
	Process(d,
		func() { captured = sig.Read() },
		func() { committed = captured },
		func() { captured, committed = 0, 0 },
	)

	in.Set(3)
	d.Tick()
	if committed != 3 {
		t.Fatalf("committed = %d, want 3", committed)
	}

	d.Reset()
	if committed != 0 {
		t.Fatalf("after reset: committed = %d, want 0", committed)
	}
}

func TestConstAndMap(t *testing.T) {
	d := NewDomain("clk")
	c := Const(d, 21)
	doubled := Map(c, func(v int) int { return v * 2 })
	if got := doubled.Read(); got != 42 {
		t.Fatalf("Map: got %d, want 42", got)
	}

	sum := Map2(c, doubled, func(a, b int) int { return a + b })
	if got := sum.Read(); got != 63 {
		t.Fatalf("Map2: got %d, want 63", got)
	}

	var unset Signal[int]
	if unset.Valid() {
		t.Fatal("zero signal should not be valid")
	}
	if !sum.Valid() {
		t.Fatal("connected signal should be valid")
	}
}
