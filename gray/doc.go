// Package gray provides Gray coding and the Gray-coded pointer counters
// that drive the dual-clock FIFO's full/empty detection.
//
// A Gray code maps consecutive integers to words differing in exactly one
// bit, which makes a multi-bit counter value safe to sample from another
// clock domain: a sample taken mid-transition equals either the previous or
// the next valid value, never an invalid intermediate.
//
// Counter is the (binary, gray, flag) pointer state machine. It is a pure
// value type with an explicit observe/advance split: Observe returns the
// pre-transition outputs for the current tick, Advance computes the state
// for the next tick. The crossing package registers it as clocked state; the
// split exists so the one-tick output/state skew is exact by construction
// and testable without a simulation kernel.
package gray
