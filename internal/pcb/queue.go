package pcb

// Queue is an intrusive, doubly-linked FIFO of *PCB. Nodes are owned by
// their PCB (via the next/prev fields embedded in PCB itself); Queue only
// holds borrowed head/tail references. It is doubly linked so that Remove
// can unlink an arbitrary, known-present node in O(1), from the middle of
// the queue and not just off the head.
//
// Every kernel queue — ready, sleeping, and each synchronization object's
// waiter queue — is one of these, each with its own id so Remove can assert
// a PCB is being removed from the queue it actually believes it's in: a PCB
// is a member of at most one queue at any instant.
//
// Queue is not safe for concurrent use by itself; callers hold the kernel's
// irq.Gate for every mutation.
type Queue struct {
	id         int
	head, tail *PCB
	size       int
}

// NewQueue returns an empty queue tagged with id, used only for the
// membership assertion in Remove. id must be non-zero: 0 is reserved to mean
// "not a member of any queue" in PCB.queueID, so a queue tagged 0 would be
// indistinguishable from a PCB that isn't queued at all. Callers should
// allocate ids from a small fixed set of constants (see kernel.queue ids)
// rather than zero or ad-hoc numbers.
func NewQueue(id int) *Queue {
	if id == 0 {
		panic("pcb: queue: id 0 is reserved for \"not queued\"")
	}
	return &Queue{id: id}
}

// Put appends p at the tail. O(1).
func (q *Queue) Put(p *PCB) {
	if p.queueID != 0 {
		panic("pcb: queue: node already belongs to a queue")
	}
	p.next = nil
	p.prev = q.tail
	if q.tail != nil {
		q.tail.next = p
	} else {
		q.head = p
	}
	q.tail = p
	p.queueID = q.id
	q.size++
}

// Get removes and returns the head, or nil if the queue is empty. O(1).
func (q *Queue) Get() *PCB {
	p := q.head
	if p == nil {
		return nil
	}
	q.unlink(p)
	return p
}

// Remove unlinks p, which must currently be a member of this queue. O(1)
// given the node.
func (q *Queue) Remove(p *PCB) {
	if p.queueID != q.id {
		panic("pcb: queue: removing a node that is not a member of this queue")
	}
	q.unlink(p)
}

func (q *Queue) unlink(p *PCB) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		q.head = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	} else {
		q.tail = p.prev
	}
	p.next, p.prev, p.queueID = nil, nil, 0
	q.size--
}

// Len reports the number of PCBs currently queued. O(1).
func (q *Queue) Len() int { return q.size }

// Empty reports whether the queue has no members. O(1).
func (q *Queue) Empty() bool { return q.size == 0 }

// Each calls fn once per queued PCB, head to tail. fn must not mutate the
// queue. Used by tests; check_sleeping
// does not use Each — its bounded scan pops and re-pushes explicitly so that
// newly-requeued sleepers appended behind the cursor are not revisited.
func (q *Queue) Each(fn func(*PCB)) {
	for p := q.head; p != nil; p = p.next {
		fn(p)
	}
}
