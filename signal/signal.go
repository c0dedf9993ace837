package signal

// Signal is an infinite discrete-time sequence of values produced at one
// domain's rate. Read returns the value at the domain's current tick.
// Signals are cheap handles; copying one does not copy state.
type Signal[T any] struct {
	domain *Domain
	read   func() T
}

// Domain returns the clock domain the signal is produced in.
func (s Signal[T]) Domain() *Domain { return s.domain }

// Read returns the signal's value at the domain's current tick.
func (s Signal[T]) Read() T { return s.read() }

// Valid reports whether the signal is connected to a producer.
func (s Signal[T]) Valid() bool { return s.read != nil }

// Const produces a signal that holds v forever.
func Const[T any](d *Domain, v T) Signal[T] {
	return Signal[T]{domain: d, read: func() T { return v }}
}

// Lift wraps a combinational function as a signal in d. The function must
// be pure over the signals it reads: it is re-evaluated on every Read.
func Lift[T any](d *Domain, f func() T) Signal[T] {
	return Signal[T]{domain: d, read: f}
}

// Map applies a combinational function to a signal.
func Map[A, B any](s Signal[A], f func(A) B) Signal[B] {
	return Signal[B]{domain: s.domain, read: func() B { return f(s.read()) }}
}

// Map2 combines two signals with a combinational function. Both signals
// must belong to the same domain; combining across domains without a
// synchronizer is a contract violation with undefined sampling behavior.
func Map2[A, B, C any](a Signal[A], b Signal[B], f func(A, B) C) Signal[C] {
	return Signal[C]{domain: a.domain, read: func() C { return f(a.read(), b.read()) }}
}

// UnsafeSynchronizer reinterprets a sequence nominally produced at src's
// rate as if sampled at dst's rate. No guarantee is made about sample
// alignment: how many src ticks correspond to one dst tick is entirely up
// to the interleaving of Tick calls. Unsafe by contract; use the crossing
// package's synchronizers instead of calling this directly.
func UnsafeSynchronizer[T any](src, dst *Domain, s Signal[T]) Signal[T] {
	debugf("unsafe crossing %q -> %q", src.name, dst.name)
	return Signal[T]{domain: dst, read: s.read}
}

// Input is a driver-owned signal source, the boundary between a test bench
// (or the fifosim tool) and the simulation. Set the value before the tick
// in which it must be observed; the value holds until the next Set.
type Input[T any] struct {
	domain *Domain
	value  T
}

// NewInput creates an input source in d holding initial.
func NewInput[T any](d *Domain, initial T) *Input[T] {
	return &Input[T]{domain: d, value: initial}
}

// Set replaces the driven value, visible to all subsequent Reads.
func (in *Input[T]) Set(v T) { in.value = v }

// Signal returns the signal view of the input.
func (in *Input[T]) Signal() Signal[T] {
	return Signal[T]{domain: in.domain, read: func() T { return in.value }}
}
