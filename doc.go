// Package cdcruntime provides a Go implementation of clock-domain-crossing
// simulation primitives.
//
// This library models safe data transfer between independently clocked,
// mutually asynchronous execution domains: a metastability-reducing bit
// synchronizer and a word-level asynchronous FIFO built from Gray-coded
// pointers and dual-register resynchronization.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	cdcruntime/          Root package with core Memory and Ticker interfaces
//	├── signal/          Discrete-time signal kernel: domains, signals, registers
//	├── gray/            Gray coding and the full/empty pointer counters
//	├── crossing/        Bit synchronizer and the dual-clock FIFO
//	├── errors/          Structured error types for construction-time failures
//	└── cmd/fifosim/     Batch and interactive FIFO simulator
//
// # Quick Start
//
// Build a 4-element dual-clock FIFO and drive it from a test bench:
//
//	wdom := signal.NewDomain("write")
//	rdom := signal.NewDomain("read")
//
//	dataIn := signal.NewInput(wdom, 0)
//	writeReq := signal.NewInput(wdom, false)
//	readReq := signal.NewInput(rdom, false)
//
//	cfg, _ := crossing.ConfigForDepth(4)
//	fifo, err := crossing.AsyncFIFOSynchronize(cfg, wdom, rdom,
//	    dataIn.Signal(), writeReq.Signal(), readReq.Signal())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dataIn.Set(42)
//	writeReq.Set(true)
//	wdom.Tick() // one write-domain clock event
//
//	readReq.Set(true)
//	rdom.Tick()
//	fmt.Println(fifo.DataOut().Read(), fifo.EmptyFlag().Read())
//
// # Simulation Model
//
// Each Domain is an independent, infinite discrete-time process. A call to
// Tick advances the domain by exactly one clock event: every register input
// is sampled from pre-tick state first, then all registers commit. Domains
// have no fixed frequency or phase relationship; the test bench (or the
// fifosim tool) chooses the interleaving of Tick calls.
//
// Nothing ever blocks. Backpressure is a per-tick boolean gate (the full and
// empty flags); a write request issued while full is silently dropped, and a
// read issued while empty returns stale memory contents.
//
// # Crossing Safety
//
// Multi-bit words are never synchronized directly between domains: distinct
// bits of a changing word may resolve on different destination ticks. The
// FIFO crosses only Gray-coded pointers, which change one bit per increment,
// through two chained destination-domain registers. A pointer sampled
// mid-transition is therefore always equal to either the previous or the
// next valid value, never an invalid intermediate.
//
// # Thread Safety
//
// A Domain and everything registered with it belong to a single simulation
// goroutine. Domains may be ticked from different goroutines only if the
// caller serializes Tick calls; the library performs no internal locking.
package cdcruntime
