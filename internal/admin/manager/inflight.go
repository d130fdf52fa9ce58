package manager

import "sync"

// Inflight tracks records with a mutation (toggle/delete) currently in
// flight, so a second submission for the same record is rejected before it
// reaches the network. Operations on different records proceed freely.
type Inflight struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewInflight() *Inflight {
	return &Inflight{ids: make(map[string]struct{})}
}

// Begin reports whether the caller may proceed; false means a mutation for
// this key is already running.
func (i *Inflight) Begin(key string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, busy := i.ids[key]; busy {
		return false
	}
	i.ids[key] = struct{}{}
	return true
}

func (i *Inflight) End(key string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.ids, key)
}

func (i *Inflight) Active(key string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, busy := i.ids[key]
	return busy
}
