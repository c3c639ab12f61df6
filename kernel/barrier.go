package kernel

import (
	"errors"

	"github.com/oskernel-go/pkernel/internal/pcb"
)

// ErrBarrierSizeTooSmall is returned by InitBarrier for n < 1.
var ErrBarrierSizeTooSmall = errors.New("kernel: barrier: n must be >= 1")

// Barrier is a reusable rendezvous point for a fixed number of processes.
// Reusable across generations: arrived and the waiter queue are both reset
// before release.
type Barrier struct {
	n       int
	arrived int
	waiters *pcb.Queue
}

// InitBarrier creates a barrier with the given fixed threshold.
func (k *Kernel) InitBarrier(n int) (*Barrier, error) {
	if n < 1 {
		return nil, ErrBarrierSizeTooSmall
	}
	return &Barrier{n: n, waiters: pcb.NewQueue(k.allocQueueID())}, nil
}

// BarrierWait increments the arrived count. If it is still below the threshold,
// the caller is enqueued as WAITING and a successor is dispatched. Once it
// reaches the threshold, arrived resets to 0, every waiter is moved to the
// ready queue, and the caller — the last arriver — returns without
// blocking.
func (k *Kernel) BarrierWait(b *Barrier, pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if k.current == nil || k.current.PID() != pid {
		return
	}

	b.arrived++
	if b.arrived < b.n {
		p := k.current
		p.SetStatus(pcb.Waiting)
		b.waiters.Put(p)
		k.current = nil
		k.schedulerEntry()
		return
	}

	b.arrived = 0
	for {
		w := b.waiters.Get()
		if w == nil {
			break
		}
		k.schedulerAdd(w)
	}
}
