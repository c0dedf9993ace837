package signal

// node is clocked state registered with a Domain. capture samples inputs
// from pre-tick state; commit applies the sampled transition; reset restores
// the initial state.
type node interface {
	capture()
	commit()
	reset()
}

// Domain identifies an independently clocked execution context. Registered
// state belongs to exactly one Domain and changes only on that domain's
// Tick. Domains have no frequency or phase relationship to each other; the
// caller chooses the interleaving of Tick calls.
type Domain struct {
	name  string
	nodes []node
	ticks uint64
}

// NewDomain creates a clock domain. The name appears in logs and the
// fifosim trace only.
func NewDomain(name string) *Domain {
	debugf("domain %q created", name)
	return &Domain{name: name}
}

// Name returns the domain's name.
func (d *Domain) Name() string { return d.name }

// Ticks returns the number of clock events since creation or the last Reset.
func (d *Domain) Ticks() uint64 { return d.ticks }

// Tick advances the domain by exactly one clock event. Every registered
// node samples its inputs before any node commits, so all transitions are
// computed from the same pre-tick snapshot.
func (d *Domain) Tick() {
	for _, n := range d.nodes {
		n.capture()
	}
	for _, n := range d.nodes {
		n.commit()
	}
	d.ticks++
}

// Reset restores every register and process in the domain to its initial
// state, effective from the first tick after the call. Each domain resets
// independently.
func (d *Domain) Reset() {
	for _, n := range d.nodes {
		n.reset()
	}
	d.ticks = 0
}

func (d *Domain) add(n node) {
	d.nodes = append(d.nodes, n)
}

// Process registers a clocked side effect with d. capture runs in the
// sampling phase and must only read signals; commit applies the captured
// effect; reset restores initial state. Used for state that does not fit a
// single register, such as a memory write port.
func Process(d *Domain, capture, commit, reset func()) {
	d.add(&proc{captureFn: capture, commitFn: commit, resetFn: reset})
}

type proc struct {
	captureFn func()
	commitFn  func()
	resetFn   func()
}

func (p *proc) capture() { p.captureFn() }
func (p *proc) commit()  { p.commitFn() }
func (p *proc) reset()   { p.resetFn() }
