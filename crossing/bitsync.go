package crossing

import (
	"github.com/signalsim/cdc-runtime/signal"
)

// BitSynchronize carries input from the src domain into dst through two
// chained dst-domain registers, both starting at initial. Each destination
// sample is the source value as observed after two destination register
// delays applied to the rate-reinterpreted source sequence: a change is
// settled for at least two destination ticks before dependent logic sees
// it.
//
// Safe for single-bit values and Gray-coded pointers only. Distinct bits of
// a changing multi-bit word may resolve on different destination ticks, so
// raw data words must cross through the FIFO, never through this.
func BitSynchronize[T any](src, dst *signal.Domain, initial T, input signal.Signal[T]) signal.Signal[T] {
	crossed := signal.UnsafeSynchronizer(src, dst, input)
	return signal.Register(dst, initial, signal.Register(dst, initial, crossed))
}

// syncPointer mirrors a Gray-coded pointer into dst with two ticks of dst
// latency. The mirrored value may lag the source arbitrarily far behind,
// which only ever makes the flags conservative: full can overreport, empty
// can overreport, neither can underreport.
func syncPointer(src, dst *signal.Domain, ptr signal.Signal[uint64]) signal.Signal[uint64] {
	return BitSynchronize(src, dst, 0, ptr)
}
