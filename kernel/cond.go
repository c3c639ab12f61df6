package kernel

import (
	"go.uber.org/zap"

	"github.com/oskernel-go/pkernel/internal/pcb"
)

// Cond is a Mesa-semantics condition variable. It owns only a waiter queue;
// the associated Lock is passed explicitly to Wait, as in POSIX's
// pthread_cond_wait(cv, lock).
type Cond struct {
	waiters *pcb.Queue
}

// InitCond initializes a new condition variable with an empty waiter
// queue. Requires no critical section if performed before publication.
func (k *Kernel) InitCond() *Cond {
	return &Cond{waiters: pcb.NewQueue(k.allocQueueID())}
}

// Wait is the first half of wait(cv, lock): the caller, which must
// currently hold l, releases it, transitions to WAITING, enqueues on cv's
// waiters, and a successor is dispatched — all within one critical
// section, so release-and-block is atomic with respect to a concurrent
// Signal or the timer interrupt.
//
// Unlike a kernel with real per-process stacks, this library has no
// assembly trampoline to resume execution mid-function when pid is later
// redispatched, so Wait only performs the "release and block" half; once
// the caller observes (via Snapshot/StatusOf, or simply by driving the
// simulation forward) that pid has been moved back to READY by a Signal or
// Broadcast and subsequently redispatched, it completes the "reacquire
// lock... before returning" step with its own explicit call to AcquireLock.
// This mirrors Mesa semantics exactly: the woken waiter contends for the
// lock normally rather than being handed it as a hidden internal step, and
// that contention is this second, explicit call.
func (k *Kernel) Wait(cv *Cond, l *Lock, pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if !l.held || l.owner != pid {
		k.log.programmerError("cond wait without holding the associated lock", zap.Int("pid", pid))
		panic("kernel: cond wait without holding the associated lock")
	}
	if k.current == nil || k.current.PID() != pid {
		return
	}
	p := k.current
	// Release l, handing it directly to a waiter if one is queued, exactly
	// as ReleaseLock does, but without re-entering the gate.
	if next := l.waiters.Get(); next != nil {
		l.owner = next.PID()
		k.schedulerAdd(next)
	} else {
		l.held = false
		l.owner = 0
	}

	p.SetStatus(pcb.Waiting)
	cv.waiters.Put(p)
	k.current = nil
	k.schedulerEntry()
}

// Signal moves at most one waiter (the head) from cv's waiters to the
// ready queue with status READY. No-op if cv has no waiters. Does not
// transfer l; the woken waiter contends for it normally.
func (k *Kernel) Signal(cv *Cond) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	p := cv.waiters.Get()
	if p == nil {
		return
	}
	k.schedulerAdd(p)
}

// Broadcast moves every current waiter on cv to the ready queue.
func (k *Kernel) Broadcast(cv *Cond) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	for {
		p := cv.waiters.Get()
		if p == nil {
			return
		}
		k.schedulerAdd(p)
	}
}
