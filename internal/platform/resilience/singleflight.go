package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution whose result is shared with every waiter.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flight
}

type flight struct {
	done    chan struct{}
	val     any
	err     error
	waiters int
}

// Do runs fn for key unless a call for key is already running. The third
// return value reports whether the result was shared with another caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight)
	}

	if f, ok := g.calls[key]; ok {
		f.waiters++
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}

	f := &flight{done: make(chan struct{})}
	g.calls[key] = f
	g.mu.Unlock()

	func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()

	g.mu.Lock()
	delete(g.calls, key)
	shared := f.waiters > 0
	g.mu.Unlock()

	return f.val, f.err, shared
}

// InFlight reports how many distinct keys are currently executing.
func (g *SingleFlight) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
