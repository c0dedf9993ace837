// Package crossing provides the clock-domain-crossing components: the
// double-register bit synchronizer and the asynchronous FIFO built from
// Gray-coded pointer counters.
//
// # Bit synchronizer
//
// BitSynchronize resamples a source-domain value through two chained
// destination-domain registers. Any change is guaranteed two destination
// ticks of settling before dependent logic can observe it. That is
// sufficient for single-bit signals and for Gray-coded pointers, which
// change one bit per increment; it is explicitly insufficient for coherent
// multi-bit words, whose bits may resolve on different ticks.
//
// # Asynchronous FIFO
//
// AsyncFIFOSynchronize composes two pointer counters (write side with the
// full rule, read side with the empty rule), two pointer synchronizers
// cross-mirroring each counter's Gray pointer into the other domain, a
// dual-ported memory, and nothing else: each domain computes its own flag
// purely from its local counter and the mirrored remote pointer.
//
// Backpressure is a per-tick boolean gate. A write issued while full is
// silently dropped; a read issued while empty returns stale memory
// contents, so consumers must gate on the empty flag.
package crossing
