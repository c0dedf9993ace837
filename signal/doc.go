// Package signal provides the discrete-time simulation kernel: clock
// domains, domain-tagged signals, registers, and the raw cross-domain
// sampling primitive.
//
// # Model
//
// A Domain is an independently clocked execution context. A Signal is an
// infinite discrete-time sequence of values produced at one domain's rate;
// Read returns the value at the domain's current tick. All state lives in
// registers owned by exactly one domain.
//
// Tick advances a domain by one clock event using a two-phase commit: first
// every register and process samples its inputs from pre-tick state, then
// all of them commit. A combinational function of registered signals
// therefore always observes a consistent pre-tick snapshot, and Mealy-style
// state machines expose pre-transition outputs by construction.
//
// # Crossing domains
//
// UnsafeSynchronizer reinterprets a source-domain signal as if sampled at a
// destination domain's rate. It makes no alignment guarantee and is safe
// only inside known crossing patterns (see the crossing package); misuse
// yields undefined synchronization behavior, not a reported error.
package signal
