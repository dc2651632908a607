package watch

import (
	"sync"

	"github.com/battlesnakeio/snek/game"
	"golang.org/x/time/rate"
)

// subscriberBuffer is how many frames a slow subscriber can fall behind
// before frames are dropped for it.
const subscriberBuffer = 16

// Hub fans frames out from the game loop to spectators. It keeps the latest
// frame for late joiners. Broadcasts are rate limited; the final frame of a
// game is always delivered.
type Hub struct {
	sync.RWMutex
	latest  *game.Frame
	subs    map[chan game.Frame]struct{}
	limiter *rate.Limiter
}

// NewHub returns a hub that broadcasts at most limit frames per second with
// the given burst.
func NewHub(limit rate.Limit, burst int) *Hub {
	if burst < 1 {
		burst = 1
	}
	return &Hub{
		subs:    map[chan game.Frame]struct{}{},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Publish records f as the latest frame and sends it to subscribers.
func (h *Hub) Publish(f game.Frame) {
	h.Lock()
	defer h.Unlock()

	h.latest = &f
	if !f.Over() && !h.limiter.Allow() {
		return
	}
	for ch := range h.subs {
		send(ch, f)
	}
}

// send never blocks. A full channel drops the frame, unless it is the last
// one, in which case the oldest queued frame is dropped to make room.
func send(ch chan game.Frame, f game.Frame) {
	select {
	case ch <- f:
		return
	default:
	}
	if !f.Over() {
		return
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- f:
	default:
	}
}

// Latest returns the most recent frame, if any was published.
func (h *Hub) Latest() (game.Frame, bool) {
	h.RLock()
	defer h.RUnlock()

	if h.latest == nil {
		return game.Frame{}, false
	}
	return *h.latest, true
}

// Subscribe returns a channel of frames starting with the latest one, and a
// function that unsubscribes.
func (h *Hub) Subscribe() (<-chan game.Frame, func()) {
	h.Lock()
	defer h.Unlock()

	ch := make(chan game.Frame, subscriberBuffer)
	if h.latest != nil {
		ch <- *h.latest
	}
	h.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.Lock()
			defer h.Unlock()
			delete(h.subs, ch)
		})
	}
}

// count is the number of active subscribers.
func (h *Hub) count() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.subs)
}
