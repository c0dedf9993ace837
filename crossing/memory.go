package crossing

import (
	cdcruntime "github.com/signalsim/cdc-runtime"
	"github.com/signalsim/cdc-runtime/signal"
)

// ram is the FIFO's dual-ported storage. The write domain owns the write
// port, the read domain owns the read port; slot exclusivity in time is
// guaranteed by the pointer protocol, not by locking. All slots read as the
// zero value of T until first written.
type ram[T any] struct {
	slots []T
}

var _ cdcruntime.Memory[int] = (*ram[int])(nil)

func newRAM[T any](depth int) *ram[T] {
	return &ram[T]{slots: make([]T, depth)}
}

func (m *ram[T]) Read(addr uint64) T     { return m.slots[addr] }
func (m *ram[T]) Write(addr uint64, v T) { m.slots[addr] = v }
func (m *ram[T]) Depth() int             { return len(m.slots) }

func (m *ram[T]) clear() {
	var zero T
	for i := range m.slots {
		m.slots[i] = zero
	}
}

// newWritePort registers the memory's write port with the write domain:
// when enabled, the addressed slot is updated in the commit phase, after
// every signal in the domain has sampled its pre-tick inputs.
func newWritePort[T any](d *signal.Domain, mem *ram[T], en signal.Signal[bool],
	addr signal.Signal[uint64], data signal.Signal[T]) {

	var (
		pending bool
		at      uint64
		value   T
	)
	signal.Process(d,
		func() {
			pending = en.Read()
			if pending {
				at = addr.Read()
				value = data.Read()
			}
		},
		func() {
			if pending {
				mem.Write(at, value)
				pending = false
			}
		},
		func() {
			pending = false
			mem.clear()
		},
	)
}
