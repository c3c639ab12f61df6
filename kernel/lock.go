package kernel

import "github.com/oskernel-go/pkernel/internal/pcb"

// Lock is an ordinary blocking mutex built over the PCB queue machinery. It
// is the primitive Cond is built on top of, since Wait needs a lock to
// release and reacquire.
type Lock struct {
	held    bool
	owner   int // pid of the holder, 0 if unheld
	waiters *pcb.Queue
}

// InitLock initializes a new, unheld Lock. Requires no critical section
// before publication.
func (k *Kernel) InitLock() *Lock {
	return &Lock{waiters: pcb.NewQueue(k.allocQueueID())}
}

// AcquireLock blocks pid until it holds l. All work happens under the gate
// from first to last statement.
func (k *Kernel) AcquireLock(l *Lock, pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)
	k.acquireLockLocked(l, pid)
}

// acquireLockLocked is AcquireLock's body, split out so the gate is taken
// exactly once at the entry point per internal/irq's one-entry-per-call
// convention. Callers hold the gate.
func (k *Kernel) acquireLockLocked(l *Lock, pid int) {
	if !l.held {
		l.held = true
		l.owner = pid
		return
	}
	if k.current == nil || k.current.PID() != pid {
		return
	}
	p := k.current
	p.SetStatus(pcb.Waiting)
	l.waiters.Put(p)
	k.current = nil
	k.schedulerEntry()
	// Upon eventual wake-up (by ReleaseLock, which hands l directly to us),
	// we already hold l; nothing further to do here — the caller observes
	// this the next time it is dispatched and this call returns.
}

// ReleaseLock releases l, held by pid. If waiters are queued, ownership is
// handed directly to the head waiter (woken, moved to READY, installed as
// owner) rather than leaving l momentarily unheld — this avoids the lost
// wakeup a "set held=false, then separately wake someone who must
// re-contend" design would risk. No-op if pid does not hold l.
func (k *Kernel) ReleaseLock(l *Lock, pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if !l.held || l.owner != pid {
		return
	}
	next := l.waiters.Get()
	if next == nil {
		l.held = false
		l.owner = 0
		return
	}
	l.owner = next.PID()
	k.schedulerAdd(next)
}
