package pcb

import "errors"

// ErrTableFull is returned by Table.Allocate when every slot is occupied:
// resource exhaustion, reported as an error rather than a nil PCB pointer a
// caller could dereference by accident.
var ErrTableFull = errors.New("pcb: table: no free slot")

// Table is the fixed-capacity static pool PCBs are allocated from: there is
// no dynamic memory allocator, every PCB comes from this fixed-size table.
// Identifiers are assigned from a monotonically increasing counter that is
// never reused within a boot, even across Reap.
type Table struct {
	slots   []PCB
	nextPID int
}

// NewTable allocates a table with the given fixed capacity.
func NewTable(capacity int) *Table {
	return &Table{
		slots:   make([]PCB, capacity),
		nextPID: 1,
	}
}

// Capacity returns the table's fixed size.
func (t *Table) Capacity() int { return len(t.slots) }

// Allocate scans for the first FREE slot, assigns the next monotonic pid,
// sets status READY, and clears nesting depth and wakeup tick. The caller
// is expected to enqueue the PCB onto the ready queue immediately
// afterward; Allocate does not touch any queue itself. Callers hold the
// gate for the duration of this call.
func (t *Table) Allocate() (*PCB, error) {
	for i := range t.slots {
		if t.slots[i].status == Free {
			p := &t.slots[i]
			p.pid = t.nextPID
			t.nextPID++
			p.status = Ready
			p.priority = 0
			p.syscallDepth = 0
			p.wakeupTick = 0
			p.entry = nil
			p.SavedSP = 0
			p.KernelStackTop = 0
			return p, nil
		}
	}
	return nil, ErrTableFull
}

// Free resets p to the FREE state: status Free, pid 0. p must not currently
// be a member of any queue (a RUNNING or EXITED PCB is never queued).
// Freeing an already-FREE PCB is a double-free programmer error and panics.
func (t *Table) Free(p *PCB) {
	if p.status == Free {
		panic("pcb: table: double free")
	}
	if p.queueID != 0 {
		panic("pcb: table: freeing a PCB that is still queued")
	}
	p.status = Free
	p.pid = 0
	p.entry = nil
}

// Lookup returns the live PCB with the given pid, or nil if none exists.
// Used by Kernel.Reap and tests; not part of the hot scheduling path.
func (t *Table) Lookup(pid int) *PCB {
	if pid == 0 {
		return nil
	}
	for i := range t.slots {
		if t.slots[i].pid == pid {
			return &t.slots[i]
		}
	}
	return nil
}

// Each calls fn once per live (non-FREE) PCB in the table. Used by
// Kernel.Snapshot.
func (t *Table) Each(fn func(*PCB)) {
	for i := range t.slots {
		if t.slots[i].status != Free {
			fn(&t.slots[i])
		}
	}
}
