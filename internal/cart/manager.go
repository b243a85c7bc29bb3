package cart

import (
	"sync"
	"time"
)

// PersistenceFactory builds the persistence backing for a session's cart.
type PersistenceFactory func(sessionID string) (Persistence, error)

// sessionTTL matches the cart cookie lifetime: entries idle longer than the
// cookie could have lived are dropped from memory. The persisted file (if
// any) stays on disk, so a returning client restores its cart.
const sessionTTL = 30 * 24 * time.Hour

// session pairs a live cart with the time it was last touched.
type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager owns every live cart, keyed by session ID. Each session's cart has
// a single logical owner (the client), but the HTTP server is concurrent, so
// access runs under the manager's lock. Idle sessions are evicted so the map
// does not grow with every session ever seen.
type Manager struct {
	mu          sync.Mutex
	carts       map[string]*session
	persistence PersistenceFactory
	ttl         time.Duration
}

// NewManager creates a manager that backs carts with the given factory.
func NewManager(factory PersistenceFactory) *Manager {
	return &Manager{
		carts:       make(map[string]*session),
		persistence: factory,
		ttl:         sessionTTL,
	}
}

// NewFileManager is a convenience for file-backed carts under dir.
func NewFileManager(dir string) *Manager {
	return NewManager(func(sessionID string) (Persistence, error) {
		return NewFileStore(dir, sessionID)
	})
}

// With runs fn against the session's cart, creating and restoring it on first
// use. The cart is only touched while the lock is held.
func (m *Manager) With(sessionID string, fn func(*Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	entry, ok := m.carts[sessionID]
	if !ok {
		m.evictExpired(now)

		p, err := m.persistence(sessionID)
		if err != nil {
			// Persistence unavailable: fall back to an ephemeral cart rather
			// than failing the request.
			p = NewMemoryStore()
		}
		entry = &session{store: NewStore(p)}
		m.carts[sessionID] = entry
	}
	entry.lastSeen = now

	return fn(entry.store)
}

// evictExpired drops sessions idle past the TTL. Called with the lock held,
// on the session-creation path only, so steady traffic pays nothing.
func (m *Manager) evictExpired(now time.Time) {
	for id, s := range m.carts {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.carts, id)
		}
	}
}
