package kernel

import (
	"errors"

	"github.com/oskernel-go/pkernel/internal/pcb"
)

// ErrNegativeSemaphoreInit is returned by InitSemaphore for a negative
// initial value.
var ErrNegativeSemaphoreInit = errors.New("kernel: semaphore: negative initial value")

// Semaphore is a counting semaphore with direct handoff on Up: value plus
// the number of Down calls that have obtained a permit equals the initial
// value plus the total Up calls across all time, with no spurious
// overcount possible because Up never increments value while a waiter
// exists — it hands the permit directly to the head waiter instead.
type Semaphore struct {
	value   int
	waiters *pcb.Queue
}

// InitSemaphore creates a semaphore with the given non-negative initial
// value.
func (k *Kernel) InitSemaphore(value int) (*Semaphore, error) {
	if value < 0 {
		return nil, ErrNegativeSemaphoreInit
	}
	return &Semaphore{value: value, waiters: pcb.NewQueue(k.allocQueueID())}, nil
}

// Down decrements sem's value and returns immediately if it is positive;
// otherwise the caller is enqueued as WAITING and a successor is
// dispatched.
func (k *Kernel) Down(sem *Semaphore, pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if sem.value > 0 {
		sem.value--
		return
	}
	if k.current == nil || k.current.PID() != pid {
		return
	}
	p := k.current
	p.SetStatus(pcb.Waiting)
	sem.waiters.Put(p)
	k.current = nil
	k.schedulerEntry()
}

// Up hands the permit directly to the head waiter if one is queued
// (value is not incremented in that case); otherwise increments value.
func (k *Kernel) Up(sem *Semaphore) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	next := sem.waiters.Get()
	if next == nil {
		sem.value++
		return
	}
	k.schedulerAdd(next)
}

// Value returns the semaphore's current counter.
func (k *Kernel) Value(sem *Semaphore) int {
	s := k.gate.Enter()
	defer k.gate.Leave(s)
	return sem.value
}
