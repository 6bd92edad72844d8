package eventloop

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresInDueOrder(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))
	var order []string

	manual.Schedule(2*time.Second, false, func() { order = append(order, "two") })
	manual.Schedule(time.Second, false, func() { order = append(order, "one") })
	manual.Schedule(2*time.Second, false, func() { order = append(order, "two-later") })

	manual.Advance(3 * time.Second)

	assert.Equal(t, []string{"one", "two", "two-later"}, order)
	assert.Equal(t, 0, manual.Pending())
	assert.Equal(t, time.Unix(3, 0), manual.Now())
}

func TestManualRepeatingAndCancel(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))
	count := 0
	var handle Handle
	handle = manual.Schedule(time.Second, true, func() {
		count++
		if count == 3 {
			manual.Cancel(handle)
		}
	})

	manual.Advance(10 * time.Second)

	assert.Equal(t, 3, count)
	assert.Equal(t, 0, manual.Pending())
}

func TestManualClockDuringCallback(t *testing.T) {
	manual := NewManual(time.Unix(100, 0))
	var seen []time.Time
	manual.Schedule(time.Second, true, func() { seen = append(seen, manual.Now()) })

	manual.Advance(3 * time.Second)

	assert.Equal(t, []time.Time{time.Unix(101, 0), time.Unix(102, 0), time.Unix(103, 0)}, seen)
}

func TestManualPostRunsOnDrain(t *testing.T) {
	manual := NewManual(time.Unix(0, 0))
	ran := false
	manual.Post(func() { ran = true })
	assert.False(t, ran)

	manual.Drain()
	assert.True(t, ran)
}

func TestRunnerDispatchesPostedWork(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = runner.Run(ctx) }()

	var wg sync.WaitGroup
	var total atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.Post(func() { total.Add(1) })
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return total.Load() == 20 }, time.Second, 5*time.Millisecond)
}

func TestRunnerRepeatingTimerStopsAfterCancel(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = runner.Run(ctx) }()

	var fired atomic.Int32
	handle := runner.Schedule(5*time.Millisecond, true, func() { fired.Add(1) })
	require.Eventually(t, func() bool { return fired.Load() >= 3 }, time.Second, time.Millisecond)

	done := make(chan struct{})
	runner.Post(func() {
		runner.Cancel(handle)
		close(done)
	})
	<-done
	stopped := fired.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, fired.Load())
}

func TestRunnerOneShot(t *testing.T) {
	runner := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = runner.Run(ctx) }()

	var fired atomic.Int32
	runner.Schedule(2*time.Millisecond, false, func() { fired.Add(1) })

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}
