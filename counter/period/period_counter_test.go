package period

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestPeriodCounterRate(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := newPeriodCounter(time.Second, clk.now)

	c.Add(10)
	require.Equal(t, int64(10), c.Value())
	require.Zero(t, c.RatePerSec(), "rate is only computed once a period has passed")

	clk.t = clk.t.Add(2 * time.Second)
	c.Add(30)
	require.Equal(t, int64(40), c.Value())
	require.Equal(t, int64(20), c.RatePerSec())

	clk.t = clk.t.Add(500 * time.Millisecond)
	c.Add(100)
	require.Equal(t, int64(20), c.RatePerSec())
}

func TestPeriodCounterConcurrentAdd(t *testing.T) {
	c := NewPeriodCounter(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(8000), c.Value())
}
