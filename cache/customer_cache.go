package customer_cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/intelligence"
)

const TTL = 5 * time.Minute

// ── Raw snapshot cache ───────────────────────────────────────────────────────
// Holds customer and order rows exactly as fetched. Enrichment and
// classification run on every read against the request clock, so a cached
// snapshot never freezes a status.

type snapshotEntry struct {
	customers []intelligence.CustomerRecord
	orders    []intelligence.OrderRecord
	fetchedAt time.Time
}

var (
	mu         sync.RWMutex
	snapshot   *snapshotEntry
	generation uint64

	now = time.Now
)

// Get returns the cached rows while they are younger than TTL.
func Get() (customers []intelligence.CustomerRecord, orders []intelligence.OrderRecord, fetchedAt time.Time, ok bool) {
	mu.RLock()
	defer mu.RUnlock()
	if snapshot != nil && now().Sub(snapshot.fetchedAt) < TTL {
		return snapshot.customers, snapshot.orders, snapshot.fetchedAt, true
	}
	return nil, nil, time.Time{}, false
}

// Generation identifies the current cache epoch. Take it before fetching and
// pass it to SetIfCurrent so a fetch that raced an invalidation is dropped.
func Generation() uint64 {
	mu.RLock()
	defer mu.RUnlock()
	return generation
}

func Set(customers []intelligence.CustomerRecord, orders []intelligence.OrderRecord) {
	mu.Lock()
	defer mu.Unlock()
	snapshot = &snapshotEntry{customers: customers, orders: orders, fetchedAt: now()}
}

// SetIfCurrent stores the rows only if no Invalidate happened since gen was read.
func SetIfCurrent(gen uint64, customers []intelligence.CustomerRecord, orders []intelligence.OrderRecord) bool {
	mu.Lock()
	defer mu.Unlock()
	if gen != generation {
		return false
	}
	snapshot = &snapshotEntry{customers: customers, orders: orders, fetchedAt: now()}
	return true
}

// Invalidate drops the snapshot (call on any customer or order change).
func Invalidate() {
	mu.Lock()
	snapshot = nil
	generation++
	mu.Unlock()
}
