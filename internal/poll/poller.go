// Package poll runs a fetch on a fixed interval with an explicit
// cancellation handle, so background badge counters stop with the shell
// that started them instead of leaking.
package poll

import (
	"context"
	"sync"
	"time"
)

// Poller invokes fn immediately and then on every tick until stopped.
// fn's error is passed to onErr (which may be nil); polling continues
// regardless, the next tick is the retry.
type Poller struct {
	interval time.Duration
	fn       func(context.Context) error
	onErr    func(error)

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// New builds a poller; Start arms it.
func New(interval time.Duration, fn func(context.Context) error, onErr func(error)) *Poller {
	return &Poller{interval: interval, fn: fn, onErr: onErr}
}

// Start begins polling under a context derived from ctx. Cancelling ctx or
// calling Stop ends the loop.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		p.run(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.run(ctx)
			}
		}
	}()
}

func (p *Poller) run(ctx context.Context) {
	if err := p.fn(ctx); err != nil && p.onErr != nil {
		p.onErr(err)
	}
}

// Stop cancels the loop and waits for it to exit. Safe to call more than
// once, and safe on a poller that was never started.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
			<-p.done
		}
	})
}
