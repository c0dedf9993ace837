package cdcruntime

// Memory represents dual-ported simulation storage: one clock domain owns
// the write port, another owns the read port. All slots read as the zero
// value of T until first written.
type Memory[T any] interface {
	Read(addr uint64) T
	Write(addr uint64, value T)
	Depth() int
}

// Ticker is anything advanced one clock event at a time.
type Ticker interface {
	Tick()
}

// Resetter restores a component to its initial state, effective from the
// next tick.
type Resetter interface {
	Reset()
}
