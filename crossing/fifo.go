package crossing

import (
	"math/bits"

	"go.uber.org/zap"

	"github.com/signalsim/cdc-runtime/errors"
	"github.com/signalsim/cdc-runtime/gray"
	"github.com/signalsim/cdc-runtime/signal"
)

const (
	minAddrBits = 1
	maxAddrBits = 30
)

// Config holds the FIFO's immutable construction parameters.
type Config struct {
	// AddrBits is the number of address bits: the buffer holds 2^AddrBits
	// elements. Internal pointers carry one extra wrap bit so a full
	// buffer is distinguishable from an empty one.
	AddrBits int
}

// Depth returns the number of elements the buffer holds.
func (c Config) Depth() int { return 1 << c.AddrBits }

func (c Config) validate() error {
	if c.AddrBits < minAddrBits || c.AddrBits > maxAddrBits {
		return errors.InvalidWidth(errors.PhaseConfig, "async fifo",
			c.AddrBits, minAddrBits, maxAddrBits)
	}
	return nil
}

// ConfigForDepth returns the Config for a buffer of exactly depth elements.
// Depth must be a power of two and at least 2.
func ConfigForDepth(depth int) (Config, error) {
	if depth < 2 || depth&(depth-1) != 0 {
		return Config{}, errors.NotPowerOfTwo(errors.PhaseConfig, "async fifo", depth)
	}
	cfg := Config{AddrBits: bits.TrailingZeros(uint(depth))}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FIFO is a dual-clock ring buffer: written by one clock domain, read by
// another, with no shared clock and no locks. Each domain sees only its own
// counter and a two-tick-delayed Gray mirror of the other domain's pointer.
type FIFO[T any] struct {
	cfg     Config
	wdom    *signal.Domain
	rdom    *signal.Domain
	mem     *ram[T]
	wstate  signal.Signal[gray.Counter]
	rstate  signal.Signal[gray.Counter]
	dataOut signal.Signal[T]
	empty   signal.Signal[bool]
	full    signal.Signal[bool]
	ptrMask uint64
}

// AsyncFIFOSynchronize elaborates a dual-clock FIFO into the given domains.
//
// Per write-domain tick: when writeReq is asserted and the FIFO is not
// full, dataIn is stored and the write pointer advances; a request while
// full is silently dropped. Per read-domain tick: DataOut presents the
// element at the current read address (stale or zero-valued while empty;
// gate on EmptyFlag), and when readReq is asserted and the FIFO is not
// empty the read pointer advances.
//
// The flags exposed in a tick are last tick's flags, while the flags
// computed for the next tick already reflect this tick's request. The
// address presented to memory likewise reflects the pointer before this
// tick's advance. This one-tick skew is what lines the pipeline up with
// one-cycle memory latency; full/empty timing depends on it.
func AsyncFIFOSynchronize[T any](cfg Config, wdom, rdom *signal.Domain,
	dataIn signal.Signal[T], writeReq, readReq signal.Signal[bool]) (*FIFO[T], error) {

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := checkInput(wdom, "dataIn", dataIn.Valid(), dataIn.Domain()); err != nil {
		return nil, err
	}
	if err := checkInput(wdom, "writeRequest", writeReq.Valid(), writeReq.Domain()); err != nil {
		return nil, err
	}
	if err := checkInput(rdom, "readRequest", readReq.Valid(), readReq.Domain()); err != nil {
		return nil, err
	}

	winit, err := gray.NewWriteCounter(cfg.AddrBits)
	if err != nil {
		return nil, err
	}
	rinit, err := gray.NewReadCounter(cfg.AddrBits)
	if err != nil {
		return nil, err
	}

	// Remote pointer mirrors; assigned below, after the counters that
	// close over them exist. Reads only happen at tick time.
	var wsync, rsync signal.Signal[uint64]

	wstate := signal.State(wdom, winit, func(c gray.Counter) gray.Counter {
		return c.Advance(writeReq.Read(), rsync.Read())
	})
	rstate := signal.State(rdom, rinit, func(c gray.Counter) gray.Counter {
		return c.Advance(readReq.Read(), wsync.Read())
	})

	wout := signal.Map(wstate, gray.Counter.Observe)
	rout := signal.Map(rstate, gray.Counter.Observe)

	wptr := signal.Map(wout, func(o gray.Outputs) uint64 { return o.Ptr })
	rptr := signal.Map(rout, func(o gray.Outputs) uint64 { return o.Ptr })
	wsync = syncPointer(wdom, rdom, wptr)
	rsync = syncPointer(rdom, wdom, rptr)

	full := signal.Map(wout, func(o gray.Outputs) bool { return o.Flag })
	empty := signal.Map(rout, func(o gray.Outputs) bool { return o.Flag })

	mem := newRAM[T](cfg.Depth())
	wen := signal.Map2(writeReq, full, func(req, f bool) bool { return req && !f })
	waddr := signal.Map(wout, func(o gray.Outputs) uint64 { return o.Addr })
	newWritePort(wdom, mem, wen, waddr, dataIn)

	// Purely combinational read port; validity is governed by the empty
	// flag, not by a read enable.
	dataOut := signal.Lift(rdom, func() T { return mem.Read(rout.Read().Addr) })

	Logger().Debug("async fifo elaborated",
		zap.Int("addr_bits", cfg.AddrBits),
		zap.Int("depth", cfg.Depth()),
		zap.String("write_domain", wdom.Name()),
		zap.String("read_domain", rdom.Name()),
	)

	return &FIFO[T]{
		cfg:     cfg,
		wdom:    wdom,
		rdom:    rdom,
		mem:     mem,
		wstate:  wstate,
		rstate:  rstate,
		dataOut: dataOut,
		empty:   empty,
		full:    full,
		ptrMask: 1<<uint(cfg.AddrBits+1) - 1,
	}, nil
}

func checkInput(want *signal.Domain, name string, valid bool, got *signal.Domain) error {
	if !valid {
		return errors.NilSignal(errors.PhaseElaborate, "async fifo", name)
	}
	if got != want {
		return errors.DomainMismatch(errors.PhaseElaborate, "async fifo", name,
			want.Name(), got.Name())
	}
	return nil
}

// DataOut is the read-domain output: the element at the current read
// address. Its value is meaningful only while EmptyFlag is deasserted.
func (f *FIFO[T]) DataOut() signal.Signal[T] { return f.dataOut }

// EmptyFlag is the read-domain status flag.
func (f *FIFO[T]) EmptyFlag() signal.Signal[bool] { return f.empty }

// FullFlag is the write-domain status flag.
func (f *FIFO[T]) FullFlag() signal.Signal[bool] { return f.full }

// Depth returns the number of elements the buffer holds.
func (f *FIFO[T]) Depth() int { return f.cfg.Depth() }

// Config returns the construction parameters.
func (f *FIFO[T]) Config() Config { return f.cfg }

// Occupancy returns the exact number of written-but-unread elements,
// computed from both domains' binary pointers. This is an observational
// probe for test benches and tooling: no single domain inside the model
// could form this value without a torn read.
func (f *FIFO[T]) Occupancy() int {
	w := f.wstate.Read().Binary()
	r := f.rstate.Read().Binary()
	return int((w - r) & f.ptrMask)
}

// Slot returns the current contents of a memory slot. Observational only.
func (f *FIFO[T]) Slot(i int) T { return f.mem.Read(uint64(i)) }

// WriteAddr returns the write-side address output for the current tick.
// Observational, for tooling.
func (f *FIFO[T]) WriteAddr() uint64 { return f.wstate.Read().Observe().Addr }

// ReadAddr returns the read-side address output for the current tick.
// Observational, for tooling.
func (f *FIFO[T]) ReadAddr() uint64 { return f.rstate.Read().Observe().Addr }
