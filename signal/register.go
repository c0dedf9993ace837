package signal

// reg is a one-tick delay element.
type reg[T any] struct {
	init T
	cur  T
	next T
	in   Signal[T]
}

func (r *reg[T]) capture() { r.next = r.in.read() }
func (r *reg[T]) commit()  { r.cur = r.next }
func (r *reg[T]) reset() {
	r.cur = r.init
	r.next = r.init
}

// Register delays in by exactly one tick of d, emitting init at the first
// tick. The input is sampled in the capture phase, so a chain of registers
// shifts by one position per tick regardless of registration order.
func Register[T any](d *Domain, init T, in Signal[T]) Signal[T] {
	r := &reg[T]{init: init, cur: init, in: in}
	d.add(r)
	return Signal[T]{domain: d, read: func() T { return r.cur }}
}

// stateNode is a registered Mealy-style state machine.
type stateNode[S any] struct {
	init S
	cur  S
	next S
	step func(S) S
}

func (n *stateNode[S]) capture() { n.next = n.step(n.cur) }
func (n *stateNode[S]) commit()  { n.cur = n.next }
func (n *stateNode[S]) reset() {
	n.cur = n.init
	n.next = n.init
}

// State registers a one-register state machine with d and returns a signal
// observing the pre-transition state. Per tick, step(current) runs in the
// capture phase: any signal it reads sees pre-tick values, and the result
// becomes the state for the next tick. Outputs derived from the returned
// signal are therefore functions of the state before this tick's inputs are
// applied, the Mealy output/state skew.
func State[S any](d *Domain, init S, step func(S) S) Signal[S] {
	n := &stateNode[S]{init: init, cur: init, step: step}
	d.add(n)
	return Signal[S]{domain: d, read: func() S { return n.cur }}
}
