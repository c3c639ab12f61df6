//go:build linux

package postick_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oskernel-go/pkernel/drivers/postick"
	"github.com/oskernel-go/pkernel/kernel"
)

// This is an environment-dependent smoke test: it exercises a real timerfd
// against a real Kernel instance rather than mocking the clock.
func TestTickerDrivesKernelTimerInterrupt(t *testing.T) {
	cfg := kernel.DefaultConfig()
	cfg.MSPerTick = 5
	k, err := kernel.New(cfg)
	require.NoError(t, err)

	ticker, err := postick.New(5 * time.Millisecond)
	require.NoError(t, err)

	go func() {
		_ = ticker.Run(func() {
			k.TimerInterrupt(nil)
		})
	}()

	time.Sleep(100 * time.Millisecond)
	ticker.Stop()

	require.Greater(t, k.Tick(), uint64(5))
}
