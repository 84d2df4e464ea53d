package service

import "sync"

// keyedMutex serializes writes per string key (lock striping). Seat
// assignments need it because they are mutable rows: two clerks editing the
// same (trip, seat) must not interleave. Stock moves need it per product so
// the floor check and the append see a consistent sum.
//
// Entries are never evicted — the key space is tiny (seats of active trips,
// product IDs), so the map stays small for the lifetime of the process.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// urunKilitleri serializes every stock write against one product, shared by
// the direct move endpoint and the composed sale. Both run a SUM-then-INSERT
// floor check; if each service carried its own lock the two paths could read
// the same balance and oversell the product.
var urunKilitleri = newKeyedMutex()

// Lock acquires the mutex for key and returns its unlock func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
