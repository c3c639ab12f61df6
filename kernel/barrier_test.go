package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitBarrierRejectsSizeBelowOne(t *testing.T) {
	k := newTestKernel(t, 2)
	_, err := k.InitBarrier(0)
	require.ErrorIs(t, err, ErrBarrierSizeTooSmall)
}

// Scenario: a barrier of n=4; 4 processes wait at
// staggered times; none returns until the 4th enters; then all 4 return;
// arrived resets to 0; a subsequent round behaves identically.
func TestBarrierRendezvousAndReuse(t *testing.T) {
	k := newTestKernel(t, 8)
	b, err := k.InitBarrier(4)
	require.NoError(t, err)

	var pids []int
	for i := 0; i < 4; i++ {
		pid, _ := k.CreateThread(func() {}, 0)
		pids = append(pids, pid)
	}

	k.TimerInterrupt(nil) // dispatch pids[0]
	for i := 0; i < 3; i++ {
		k.BarrierWait(b, pids[i])
		status, _ := k.StatusOf(pids[i])
		require.Equal(t, StatusWaiting, status, "must not return before all n arrive")
	}

	// pids[3] is next dispatched after the third BarrierWait's internal
	// redispatch chain.
	require.Equal(t, pids[3], k.Snapshot().CurrentPID)
	k.BarrierWait(b, pids[3]) // the last arriver: releases everyone

	for _, pid := range pids[:3] {
		status, _ := k.StatusOf(pid)
		require.Equal(t, StatusReady, status)
	}
	// The last arriver does not block: it remains RUNNING.
	status3, _ := k.StatusOf(pids[3])
	require.Equal(t, StatusRunning, status3)

	// Second generation behaves identically.
	k.TimerInterrupt(nil) // rotate to pids[0]
	for i := 0; i < 3; i++ {
		k.BarrierWait(b, k.Snapshot().CurrentPID)
	}
	k.BarrierWait(b, k.Snapshot().CurrentPID) // the 4th arriver releases the round
	require.Equal(t, 4, countReadyAmong(k, pids))
}

func countReadyAmong(k *Kernel, pids []int) int {
	n := 0
	for _, pid := range pids {
		status, ok := k.StatusOf(pid)
		if ok && (status == StatusReady || status == StatusRunning) {
			n++
		}
	}
	return n
}
