package kernel

import "github.com/oskernel-go/pkernel/internal/pcb"

// Sleep blocks the caller for at least ms milliseconds. It computes
// wakeup = tick + ceil(ms / MS_PER_TICK), transitions
// the caller to SLEEPING, appends it to the sleeping queue, then dispatches
// the next ready process. It is a no-op if pid is not the current-running
// process.
func (k *Kernel) Sleep(pid int, ms int) {
	s := k.gate.Enter()
	defer k.gate.Leave(s)

	if k.current == nil || k.current.PID() != pid {
		return
	}
	p := k.current
	wakeup := k.tick + k.cfg.ticksForMillis(ms)
	p.SetWakeupTick(wakeup)
	p.SetStatus(pcb.Sleeping)
	k.sleeping.Put(p)
	k.current = nil
	k.schedulerEntry()
}

// checkSleeping performs a bounded single-pass scan over the sleeping
// queue: any PCB whose wakeup tick has been
// reached is moved to the ready queue; everything else is re-appended to
// the sleeping queue. The scan size is snapshotted at entry so a PCB
// requeued behind the cursor during this same call is never revisited.
// Callers hold the gate.
func (k *Kernel) checkSleeping() {
	n := k.sleeping.Len()
	for i := 0; i < n; i++ {
		p := k.sleeping.Get()
		if p == nil {
			break
		}
		if k.tick >= p.WakeupTick() {
			k.log.wakeup(p.PID(), k.tick)
			k.schedulerAdd(p)
			continue
		}
		k.sleeping.Put(p)
	}
}
