//go:build linux

// Package postick drives a Kernel's timer interrupt path from a real
// monotonic hardware clock, standing in for the periodic MS_PER_TICK timer
// that a bare-metal build would wire to an actual PIT or APIC timer
// channel. On Linux this uses a timerfd, the same kind of primitive
// container runtimes use elsewhere to schedule periodic wakeups, reached
// here through golang.org/x/sys/unix's typed wrappers instead of raw
// syscall numbers.
package postick

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Ticker drives repeated calls to a TimerInterrupt-shaped function at a
// fixed period, on whichever goroutine calls Run — typically a dedicated
// one — giving the kernel package's critical section gate a genuine
// concurrent interrupt source to exclude, rather than a synthetic
// single-goroutine test ticker.
type Ticker struct {
	fd     int
	period time.Duration
	stop   chan struct{}
	done   chan struct{}
}

// New creates a timerfd-backed ticker with the given period. period must be
// positive.
func New(period time.Duration) (*Ticker, error) {
	if period <= 0 {
		return nil, fmt.Errorf("postick: period must be positive, got %s", period)
	}
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, 0)
	if err != nil {
		return nil, fmt.Errorf("postick: timerfd_create: %w", err)
	}
	spec := &unix.ItimerSpec{
		Interval: unix.NsecToTimespec(period.Nanoseconds()),
		Value:    unix.NsecToTimespec(period.Nanoseconds()),
	}
	if err := unix.TimerfdSettime(fd, 0, spec, nil); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("postick: timerfd_settime: %w", err)
	}
	return &Ticker{
		fd:     fd,
		period: period,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

// Run blocks, calling onTick once per expired timerfd period, until Stop is
// called. onTick is typically a closure calling
// (*kernel.Kernel).TimerInterrupt with a nil controller; the EOI
// acknowledgment is the read() that clears the timerfd's expiration counter, performed here
// before onTick runs so a slow handler can't cause the next read to
// spuriously return an already-stale expiration count.
func (t *Ticker) Run(onTick func()) error {
	defer close(t.done)
	buf := make([]byte, 8)
	for {
		select {
		case <-t.stop:
			return nil
		default:
		}
		n, err := unix.Read(t.fd, buf)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return fmt.Errorf("postick: read: %w", err)
		}
		if n != 8 {
			return fmt.Errorf("postick: short read of %d bytes from timerfd", n)
		}
		onTick()
	}
}

// Stop halts Run and releases the underlying timerfd. Safe to call once.
func (t *Ticker) Stop() {
	close(t.stop)
	unix.Close(t.fd)
	<-t.done
}
