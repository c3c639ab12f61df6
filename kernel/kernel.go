// Package kernel implements the preemptive scheduler, blocking-sleep
// subsystem, and kernel-mode synchronization primitives (condition
// variable, counting semaphore, reusable barrier) described for a small
// educational operating system's kernel core.
//
// Every operation here is a method on *Kernel, the single aggregate
// collecting the process-wide singletons a real implementation would keep
// as bare globals (tick counter, ready/sleeping queues, PCB table,
// current-running slot), passed by reference instead of addressed
// ambiently, so that more than one kernel instance can exist in a single
// process (useful for tests that want several independent kernels running
// concurrently).
package kernel

import (
	"errors"

	"go.uber.org/zap"

	"github.com/oskernel-go/pkernel/internal/irq"
	"github.com/oskernel-go/pkernel/internal/pcb"
)

// Reserved queue ids. 0 is reserved by internal/pcb to mean "not queued";
// every real queue here gets an id starting at 1. Synchronization objects
// created after boot get their ids from a running counter seeded above the
// two fixed kernel queues, so no two waiter queues ever collide.
const (
	queueIDReady = 1 + iota
	queueIDSleeping
	firstDynamicQueueID
)

// ErrTableFull is returned by CreateThread when the PCB table has no free
// slot.
var ErrTableFull = pcb.ErrTableFull

// Status is one of the PCB lifecycle states, re-exported so callers outside
// this module never need to import the internal pcb package to make sense
// of a Snapshot or StatusOf result.
type Status = pcb.Status

// The Status values a PCB can be in.
const (
	StatusFree     = pcb.Free
	StatusReady    = pcb.Ready
	StatusRunning  = pcb.Running
	StatusSleeping = pcb.Sleeping
	StatusWaiting  = pcb.Waiting
	StatusExited   = pcb.Exited
)

// Kernel is one instance of the scheduler, sleep subsystem, and
// synchronization primitive machinery. The zero value is not usable; build
// one with New.
type Kernel struct {
	cfg Config
	log logger

	gate irq.Gate

	table    *pcb.Table
	ready    *pcb.Queue
	sleeping *pcb.Queue

	current *pcb.PCB

	tick uint64

	nextQueueID int
}

// Option configures a Kernel at construction time.
type Option func(*Kernel)

// WithLogger attaches a zap logger for tick/dispatch/wakeup trace events.
// Without this option a Kernel runs with a no-op logger.
func WithLogger(z *zap.Logger) Option {
	return func(k *Kernel) {
		if z != nil {
			k.log = logger{z: z}
		}
	}
}

// New constructs a Kernel from cfg, which is verified first. The PCB table
// is allocated at cfg.TableCapacity and the ready/sleeping queues start
// empty.
func New(cfg Config, opts ...Option) (*Kernel, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	k := &Kernel{
		cfg:         cfg,
		log:         newNopLogger(),
		table:       pcb.NewTable(cfg.TableCapacity),
		ready:       pcb.NewQueue(queueIDReady),
		sleeping:    pcb.NewQueue(queueIDSleeping),
		nextQueueID: firstDynamicQueueID,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// allocQueueID hands out a fresh id for a synchronization object's waiter
// queue. It takes the gate itself, since the counter is shared kernel state
// even when the sync object being built is not yet published.
func (k *Kernel) allocQueueID() int {
	s := k.gate.Enter()
	defer k.gate.Leave(s)
	id := k.nextQueueID
	k.nextQueueID++
	return id
}

// Tick returns the current tick count, taking the gate (the tick counter
// is otherwise only safe to read with interrupts disabled).
func (k *Kernel) Tick() uint64 {
	s := k.gate.Enter()
	defer k.gate.Leave(s)
	return k.tick
}

// Snapshot is a read-only view of kernel state for tests and diagnostics.
type Snapshot struct {
	Tick         uint64
	ReadyLen     int
	SleepingLen  int
	CurrentPID   int // 0 if idle
	StatusCounts map[Status]int
}

// Snapshot takes the gate and returns a consistent view of kernel state.
func (k *Kernel) Snapshot() Snapshot {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	counts := make(map[Status]int, 6)
	k.table.Each(func(p *pcb.PCB) {
		counts[p.Status()]++
	})

	snap := Snapshot{
		Tick:         k.tick,
		ReadyLen:     k.ready.Len(),
		SleepingLen:  k.sleeping.Len(),
		StatusCounts: counts,
	}
	if k.current != nil {
		snap.CurrentPID = k.current.PID()
	}
	return snap
}

// StatusOf returns pid's current status and whether pid names a live PCB.
func (k *Kernel) StatusOf(pid int) (Status, bool) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	p := k.table.Lookup(pid)
	if p == nil {
		return StatusFree, false
	}
	return p.Status(), true
}

// ErrNotExited is returned by Reap when pid does not name an EXITED PCB.
var ErrNotExited = errors.New("kernel: reap: pcb has not exited")

// Reap reclaims an EXITED PCB's table slot back to FREE, so the slot can be
// reused by a later Allocate; the pid itself is never reused. Takes the gate.
func (k *Kernel) Reap(pid int) error {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	p := k.table.Lookup(pid)
	if p == nil {
		return ErrNotExited
	}
	if p.Status() != pcb.Exited {
		return ErrNotExited
	}
	k.table.Free(p)
	return nil
}
