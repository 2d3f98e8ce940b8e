package runtime

import (
	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"sync"

	"github.com/samber/lo"
)

type clientEntry struct {
	username string
	sink     contract.Sink
}

// ClientRegistry maps live connection identities to authenticated usernames.
// All operations serialize on one mutex; callers never touch the raw map.
type ClientRegistry struct {
	mu      sync.RWMutex
	entries map[domain.ClientID]clientEntry
}

func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{entries: make(map[domain.ClientID]clientEntry)}
}

// Register publishes a session under its username. The duplicate-username scan
// and the insert share one critical section: two concurrent registrations with
// the same username can never both succeed.
func (r *ClientRegistry) Register(id domain.ClientID, username string, sink contract.Sink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		if entry.username == username {
			return errors.ErrAlreadyLoggedIn
		}
	}
	r.entries[id] = clientEntry{username: username, sink: sink}
	return nil
}

// Unregister removes the entry if present; unknown identities are a no-op.
func (r *ClientRegistry) Unregister(id domain.ClientID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// LookupByUsername resolves a username to its connection identity.
// Linear scan: the registry is keyed by identity, and direct-message routing
// is the only username-keyed path.
func (r *ClientRegistry) LookupByUsername(username string) (domain.ClientID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, entry := range r.entries {
		if entry.username == username {
			return id, true
		}
	}
	return "", false
}

func (r *ClientRegistry) SinkFor(id domain.ClientID) (contract.Sink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return entry.sink, true
}

// Snapshot returns the current entries for fan-out. Entries may be removed
// concurrently after the call returns; senders must tolerate delivery
// failures to an identity that is already gone.
func (r *ClientRegistry) Snapshot() []contract.ClientEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.MapToSlice(r.entries, func(id domain.ClientID, e clientEntry) contract.ClientEntry {
		return contract.ClientEntry{ID: id, Username: e.username, Sink: e.sink}
	})
}

func (r *ClientRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
