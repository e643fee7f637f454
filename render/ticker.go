package render

import (
	"time"

	"vellum/input"
)

// ticker emits Tick events at a fixed rate onto the loop's shared
// event queue. Ticks are not coalesced while the queue has room; only
// when it is full does the ticker discard the oldest queued event
// (which may be a Resize rather than a Tick) to enqueue the newest tick.
type ticker struct {
	rate  time.Duration
	queue chan<- input.Event
	stopC chan struct{}
	frame uint64
}

func newTicker(rate time.Duration, queue chan<- input.Event) *ticker {
	return &ticker{rate: rate, queue: queue, stopC: make(chan struct{})}
}

func (t *ticker) start() {
	go func() {
		tk := time.NewTicker(t.rate)
		defer tk.Stop()
		last := time.Now()
		for {
			select {
			case <-t.stopC:
				return
			case now := <-tk.C:
				t.frame++
				ev := input.TickEv(t.frame, now.Sub(last))
				last = now
				select {
				case t.queue <- ev:
				default:
					// queue full: drop the oldest queued event, replace
					// it with this tick so the latest frame is queued.
					select {
					case <-t.queue:
					default:
					}
					select {
					case t.queue <- ev:
					default:
					}
				}
			}
		}
	}()
}

func (t *ticker) stop() {
	close(t.stopC)
}
