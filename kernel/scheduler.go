package kernel

import "github.com/oskernel-go/pkernel/internal/pcb"

// CreateThread allocates a PCB, installs entry as its first-dispatch
// trampoline target, and enqueues it on the ready queue. It fails with
// ErrTableFull if the PCB table has no free slot.
func (k *Kernel) CreateThread(entry func(), priority int) (int, error) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	p, err := k.table.Allocate()
	if err != nil {
		return 0, err
	}
	p.SetPriority(k.cfg.clampPriority(priority))
	p.SetEntry(entry)
	p.SetStatus(pcb.Ready)
	k.schedulerAdd(p)
	return p.PID(), nil
}

// schedulerAdd sets pcb.status = READY and appends it to the ready queue.
// Callers hold the gate.
func (k *Kernel) schedulerAdd(p *pcb.PCB) {
	p.SetStatus(pcb.Ready)
	k.ready.Put(p)
}

// schedulerEntry is the dispatcher. It dequeues the head of the ready queue; if empty it leaves current-running
// empty (idle). Otherwise it installs the dequeued PCB as current-running,
// sets RUNNING, and zeroes its syscall nesting depth. Callers hold the gate.
func (k *Kernel) schedulerEntry() {
	next := k.ready.Get()
	if next == nil {
		k.current = nil
		k.log.idle(k.tick)
		return
	}
	next.SetStatus(pcb.Running)
	next.ClearSyscallDepth()
	next.ClearEntry()
	wasIdle := k.current == nil
	k.current = next
	k.log.dispatch(next.PID(), wasIdle)
}

// putCurrentRunning rotates the current process to the tail of the ready
// queue. No-op if current-running is
// empty or its status is not RUNNING (a syscall earlier in the same
// critical section may already have moved it to SLEEPING/WAITING/EXITED).
// Callers hold the gate.
func (k *Kernel) putCurrentRunning() {
	if k.current == nil || k.current.Status() != pcb.Running {
		return
	}
	p := k.current
	k.current = nil
	k.schedulerAdd(p)
}

// Yield reschedules the caller without blocking: putCurrentRunning
// followed by schedulerEntry, inside one critical section. pid identifies
// the calling process; Yield is a no-op if pid is not the current-running
// process.
func (k *Kernel) Yield(pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if k.current == nil || k.current.PID() != pid {
		return
	}
	k.putCurrentRunning()
	k.schedulerEntry()
}

// Exit terminates the caller: status becomes EXITED and the next ready
// process is dispatched. Exit never returns control to the caller's own
// logical flow in the system being modeled; here that is represented by
// the calling goroutine being expected to stop issuing kernel operations
// for this pid afterward, since there is no stack-swap to perform. The PCB
// is not reclaimed to FREE; see Reap.
func (k *Kernel) Exit(pid int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if k.current == nil || k.current.PID() != pid {
		return
	}
	k.current.SetStatus(pcb.Exited)
	k.current = nil
	k.schedulerEntry()
}

// GetPriority returns pid's priority, or 0 if pid does not name a live
// process.
func (k *Kernel) GetPriority(pid int) int {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	p := k.table.Lookup(pid)
	if p == nil {
		return 0
	}
	return p.Priority()
}

// SetPriority sets pid's priority, clamped to the configured range.
// No-op if pid does not name a live process.
func (k *Kernel) SetPriority(pid int, priority int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	p := k.table.Lookup(pid)
	if p == nil {
		return
	}
	p.SetPriority(k.cfg.clampPriority(priority))
}
