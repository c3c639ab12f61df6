package kernel

// This file is the external syscall surface: a thin, Sys-prefixed wrapper
// over the corresponding *Kernel method implemented alongside its
// subsystem (scheduler.go, sleep.go, lock.go, cond.go, semaphore.go,
// barrier.go), kept separate so the full call surface is visible in one
// place, the way a syscall dispatch table reads as a flat list rather than
// scattered across subsystem files.

// SysYield reschedules pid without blocking.
func (k *Kernel) SysYield(pid int) { k.Yield(pid) }

// SysExit terminates pid.
func (k *Kernel) SysExit(pid int) { k.Exit(pid) }

// SysSleep blocks pid for at least ms milliseconds.
func (k *Kernel) SysSleep(pid int, ms int) { k.Sleep(pid, ms) }

// SysGetPriority returns pid's priority.
func (k *Kernel) SysGetPriority(pid int) int { return k.GetPriority(pid) }

// SysSetPriority sets pid's priority, clamped to the configured range.
func (k *Kernel) SysSetPriority(pid int, priority int) { k.SetPriority(pid, priority) }

// SysCreateThread allocates a PCB for entry and enqueues it.
func (k *Kernel) SysCreateThread(entry func(), priority int) (int, error) {
	return k.CreateThread(entry, priority)
}

// SysLockInit creates a new, unheld Lock.
func (k *Kernel) SysLockInit() *Lock { return k.InitLock() }

// SysLockAcquire blocks pid until it holds l.
func (k *Kernel) SysLockAcquire(l *Lock, pid int) { k.AcquireLock(l, pid) }

// SysLockRelease releases l, held by pid.
func (k *Kernel) SysLockRelease(l *Lock, pid int) { k.ReleaseLock(l, pid) }

// SysConditionInit creates a new condition variable.
func (k *Kernel) SysConditionInit() *Cond { return k.InitCond() }

// SysConditionWait releases l and blocks pid on cv; pid must hold l.
func (k *Kernel) SysConditionWait(cv *Cond, l *Lock, pid int) { k.Wait(cv, l, pid) }

// SysConditionSignal wakes at most one waiter on cv.
func (k *Kernel) SysConditionSignal(cv *Cond) { k.Signal(cv) }

// SysConditionBroadcast wakes every waiter on cv.
func (k *Kernel) SysConditionBroadcast(cv *Cond) { k.Broadcast(cv) }

// SysSemaphoreInit creates a semaphore with the given non-negative value.
func (k *Kernel) SysSemaphoreInit(value int) (*Semaphore, error) { return k.InitSemaphore(value) }

// SysSemaphoreDown blocks pid until sem has a permit available.
func (k *Kernel) SysSemaphoreDown(sem *Semaphore, pid int) { k.Down(sem, pid) }

// SysSemaphoreUp releases a permit on sem.
func (k *Kernel) SysSemaphoreUp(sem *Semaphore) { k.Up(sem) }

// SysBarrierInit creates a barrier with the given fixed threshold.
func (k *Kernel) SysBarrierInit(n int) (*Barrier, error) { return k.InitBarrier(n) }

// SysBarrierWait blocks pid until n processes have called SysBarrierWait.
func (k *Kernel) SysBarrierWait(b *Barrier, pid int) { k.BarrierWait(b, pid) }
