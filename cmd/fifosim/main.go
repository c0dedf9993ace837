package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/signalsim/cdc-runtime/crossing"
	"github.com/signalsim/cdc-runtime/signal"
)

func main() {
	var (
		depth       = flag.Int("depth", 4, "FIFO depth (power of two, >= 2)")
		plan        = flag.String("plan", "wwwwwrrrrrrrrr", "Tick plan: w=write tick, r=read tick, W/R=idle ticks, spaces ignored")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		signal.SetLogger(logger)
		crossing.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*depth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*depth, *plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rig is a FIFO wired to driveable inputs, shared by batch and
// interactive mode.
type rig struct {
	wdom     *signal.Domain
	rdom     *signal.Domain
	dataIn   *signal.Input[int]
	writeReq *signal.Input[bool]
	readReq  *signal.Input[bool]
	fifo     *crossing.FIFO[int]
	nextVal  int
}

func newRig(depth int) (*rig, error) {
	r := &rig{
		wdom:    signal.NewDomain("write"),
		rdom:    signal.NewDomain("read"),
		nextVal: 1,
	}
	r.dataIn = signal.NewInput(r.wdom, 0)
	r.writeReq = signal.NewInput(r.wdom, false)
	r.readReq = signal.NewInput(r.rdom, false)

	cfg, err := crossing.ConfigForDepth(depth)
	if err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}
	r.fifo, err = crossing.AsyncFIFOSynchronize(cfg, r.wdom, r.rdom,
		r.dataIn.Signal(), r.writeReq.Signal(), r.readReq.Signal())
	if err != nil {
		return nil, fmt.Errorf("elaborate: %w", err)
	}
	return r, nil
}

// writeTick runs one write-domain clock event, requesting a write of v.
// Reports whether the FIFO accepted it.
func (r *rig) writeTick(v int) bool {
	accepted := !r.fifo.FullFlag().Read()
	r.dataIn.Set(v)
	r.writeReq.Set(true)
	r.wdom.Tick()
	r.writeReq.Set(false)
	return accepted
}

// readTick runs one read-domain clock event with the read request high.
// Reports the sampled value and whether it was valid.
func (r *rig) readTick() (int, bool) {
	valid := !r.fifo.EmptyFlag().Read()
	v := r.fifo.DataOut().Read()
	r.readReq.Set(true)
	r.rdom.Tick()
	r.readReq.Set(false)
	return v, valid
}

func run(depth int, plan string) error {
	r, err := newRig(depth)
	if err != nil {
		return err
	}

	fmt.Printf("Async FIFO: depth %d, write domain %q, read domain %q\n\n",
		r.fifo.Depth(), r.wdom.Name(), r.rdom.Name())
	fmt.Printf("%-5s %-6s %-14s %-8s %-6s %-6s %s\n",
		"step", "clock", "action", "value", "full", "empty", "occupancy")

	for i, c := range strings.ReplaceAll(plan, " ", "") {
		var clock, action, value string
		switch c {
		case 'w':
			v := r.nextVal
			r.nextVal++
			clock = "write"
			value = fmt.Sprintf("%d", v)
			if r.writeTick(v) {
				action = "write"
			} else {
				action = "write DROPPED"
			}
		case 'W':
			clock, action, value = "write", "idle", "-"
			r.wdom.Tick()
		case 'r':
			clock = "read"
			v, ok := r.readTick()
			if ok {
				action = "read"
				value = fmt.Sprintf("%d", v)
			} else {
				action = "read (empty)"
				value = "-"
			}
		case 'R':
			clock, action, value = "read", "idle", "-"
			r.rdom.Tick()
		default:
			return fmt.Errorf("plan: unknown tick %q at position %d (want w, r, W or R)", c, i)
		}

		fmt.Printf("%-5d %-6s %-14s %-8s %-6v %-6v %d/%d\n",
			i, clock, action, value,
			r.fifo.FullFlag().Read(), r.fifo.EmptyFlag().Read(),
			r.fifo.Occupancy(), r.fifo.Depth())
	}
	return nil
}
