//go:build !linux

package postick

import (
	"fmt"
	"runtime"
	"time"
)

// Ticker is the non-Linux stand-in: golang.org/x/sys/unix's timerfd calls
// are Linux-only, so on other platforms New reports an error rather than
// silently falling back to a less faithful timer source. A test or host
// program on such platforms should drive (*kernel.Kernel).TimerInterrupt
// from a plain time.Ticker instead.
type Ticker struct{}

// New always fails on non-Linux platforms.
func New(period time.Duration) (*Ticker, error) {
	return nil, fmt.Errorf("postick: timerfd driver not available on %s", runtime.GOOS)
}

// Run never runs; present only so Ticker satisfies the same shape as the
// Linux implementation.
func (t *Ticker) Run(onTick func()) error {
	return fmt.Errorf("postick: timerfd driver not available on %s", runtime.GOOS)
}

// Stop is a no-op on non-Linux platforms.
func (t *Ticker) Stop() {}
