package irq

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGateEnterLeaveBalances(t *testing.T) {
	var g Gate
	require.Equal(t, 0, g.Depth())
	s := g.Enter()
	require.Equal(t, 1, g.Depth())
	g.Leave(s)
	require.Equal(t, 0, g.Depth())
}

func TestGateUnbalancedLeavePanics(t *testing.T) {
	var g Gate
	s := g.Enter()
	g.Leave(s)
	require.Panics(t, func() {
		g.Leave(s)
	})
}

func TestGateExcludesConcurrentHolder(t *testing.T) {
	var g Gate
	var mu sync.Mutex
	var order []string

	s := g.Enter()

	done := make(chan struct{})
	go func() {
		s2 := g.Enter()
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
		g.Leave(s2)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	order = append(order, "first")
	mu.Unlock()
	g.Leave(s)

	<-done
	require.Equal(t, []string{"first", "second"}, order)
}
