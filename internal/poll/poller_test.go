package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollerRunsImmediately(t *testing.T) {
	ran := make(chan struct{})
	var once atomic.Bool
	p := New(time.Hour, func(context.Context) error {
		if once.CompareAndSwap(false, true) {
			close(ran)
		}
		return nil
	}, nil)

	p.Start(context.Background())
	defer p.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("first run did not happen immediately")
	}
}

func TestPollerTicks(t *testing.T) {
	var runs int32
	p := New(10*time.Millisecond, func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}, nil)

	p.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	p.Stop()

	if got := atomic.LoadInt32(&runs); got < 3 {
		t.Fatalf("expected several runs, got %d", got)
	}
}

func TestStopHaltsPolling(t *testing.T) {
	var runs int32
	p := New(5*time.Millisecond, func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}, nil)

	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	settled := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	if after := atomic.LoadInt32(&runs); after != settled {
		t.Fatalf("poller kept running after Stop: %d -> %d", settled, after)
	}
}

func TestStopIsIdempotentAndSafeWithoutStart(t *testing.T) {
	p := New(time.Second, func(context.Context) error { return nil }, nil)
	p.Stop()
	p.Stop()

	started := New(time.Hour, func(context.Context) error { return nil }, nil)
	started.Start(context.Background())
	started.Stop()
	started.Stop()
}

func TestContextCancellationStopsPolling(t *testing.T) {
	var runs int32
	p := New(5*time.Millisecond, func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	settled := atomic.LoadInt32(&runs)
	time.Sleep(50 * time.Millisecond)
	if after := atomic.LoadInt32(&runs); after != settled {
		t.Fatalf("poller kept running after context cancel: %d -> %d", settled, after)
	}
	p.Stop()
}

func TestErrorsReachHandlerAndPollingContinues(t *testing.T) {
	var errs int32
	var runs int32
	p := New(5*time.Millisecond, func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return errors.New("fetch failed")
	}, func(err error) {
		atomic.AddInt32(&errs, 1)
	})

	p.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if atomic.LoadInt32(&errs) == 0 {
		t.Fatal("error handler never invoked")
	}
	if atomic.LoadInt32(&runs) < 2 {
		t.Fatal("polling should continue after an error")
	}
}
