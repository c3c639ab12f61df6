package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateThreadTableFull(t *testing.T) {
	k := newTestKernel(t, 1)
	_, err := k.CreateThread(func() {}, 0)
	require.NoError(t, err)

	_, err = k.CreateThread(func() {}, 0)
	require.ErrorIs(t, err, ErrTableFull)
}

func TestCreateThreadClampsPriority(t *testing.T) {
	k := newTestKernel(t, 2)
	cfg := DefaultConfig()
	pid, err := k.CreateThread(func() {}, cfg.MaxPriority+100)
	require.NoError(t, err)
	require.Equal(t, cfg.MaxPriority, k.GetPriority(pid))
}

func TestRoundRobinDispatchOrder(t *testing.T) {
	k := newTestKernel(t, 4)
	a, _ := k.CreateThread(func() {}, 0)
	b, _ := k.CreateThread(func() {}, 0)
	c, _ := k.CreateThread(func() {}, 0)

	var order []int
	for i := 0; i < 6; i++ {
		k.TimerInterrupt(nil)
		order = append(order, k.Snapshot().CurrentPID)
	}
	require.Equal(t, []int{a, b, c, a, b, c}, order)
}

func TestYieldRotatesCurrentToTail(t *testing.T) {
	k := newTestKernel(t, 4)
	a, _ := k.CreateThread(func() {}, 0)
	b, _ := k.CreateThread(func() {}, 0)

	k.TimerInterrupt(nil) // dispatch a
	require.Equal(t, a, k.Snapshot().CurrentPID)

	k.Yield(a)
	require.Equal(t, b, k.Snapshot().CurrentPID)

	k.Yield(b)
	require.Equal(t, a, k.Snapshot().CurrentPID)
}

func TestYieldNoOpForNonCurrentPID(t *testing.T) {
	k := newTestKernel(t, 4)
	a, _ := k.CreateThread(func() {}, 0)
	_, _ = k.CreateThread(func() {}, 0)
	k.TimerInterrupt(nil)
	require.Equal(t, a, k.Snapshot().CurrentPID)

	k.Yield(999)
	require.Equal(t, a, k.Snapshot().CurrentPID)
}

func TestExitDispatchesNextAndDoesNotReclaim(t *testing.T) {
	k := newTestKernel(t, 4)
	a, _ := k.CreateThread(func() {}, 0)
	b, _ := k.CreateThread(func() {}, 0)

	k.TimerInterrupt(nil) // dispatch a
	k.Exit(a)

	require.Equal(t, b, k.Snapshot().CurrentPID)
	status, ok := k.StatusOf(a)
	require.True(t, ok)
	require.Equal(t, StatusExited, status)
}

func TestGetPrioritySetPriority(t *testing.T) {
	k := newTestKernel(t, 4)
	cfg := DefaultConfig()
	a, _ := k.CreateThread(func() {}, 0)

	k.SetPriority(a, 5)
	require.Equal(t, 5, k.GetPriority(a))

	k.SetPriority(a, cfg.MaxPriority+10)
	require.Equal(t, cfg.MaxPriority, k.GetPriority(a))
}

func TestGetPriorityNoCurrentProcess(t *testing.T) {
	k := newTestKernel(t, 4)
	require.Equal(t, 0, k.GetPriority(42))
}

func TestCreateThreadInstallsEntryConsumedOnFirstDispatch(t *testing.T) {
	k := newTestKernel(t, 4)
	var ran bool
	a, _ := k.CreateThread(func() { ran = true }, 0)

	p := k.table.Lookup(a)
	require.NotNil(t, p.Entry())

	k.TimerInterrupt(nil) // dispatch a
	require.Equal(t, a, k.Snapshot().CurrentPID)
	require.Nil(t, p.Entry())
	require.False(t, ran, "schedulerEntry only installs/clears the trampoline target, it never calls it")
}

func TestIdleWhenNoProcesses(t *testing.T) {
	k := newTestKernel(t, 4)
	k.TimerInterrupt(nil)
	require.Equal(t, 0, k.Snapshot().CurrentPID)
}

// Scenario: two compute-only processes of equal
// priority, after 100 ticks both have run at least 40 times.
func TestFairnessOverManyTicks(t *testing.T) {
	k := newTestKernel(t, 4)
	a, _ := k.CreateThread(func() {}, 0)
	b, _ := k.CreateThread(func() {}, 0)

	runs := map[int]int{a: 0, b: 0}
	for i := 0; i < 100; i++ {
		k.TimerInterrupt(nil)
		runs[k.Snapshot().CurrentPID]++
	}
	require.GreaterOrEqual(t, runs[a], 40)
	require.GreaterOrEqual(t, runs[b], 40)
}
