package service

import "sync"

// claimGuard lets at most one claim per user run inside this process.
type claimGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newClaimGuard() *claimGuard {
	return &claimGuard{active: make(map[string]struct{})}
}

// acquire marks userID busy. The returned release is safe to call twice.
func (g *claimGuard) acquire(userID string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[userID]; busy {
		return nil, false
	}
	g.active[userID] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, userID)
			g.mu.Unlock()
		})
	}, true
}

func (g *claimGuard) busy(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.active[userID]
	return ok
}
