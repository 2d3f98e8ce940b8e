package runtime

import (
	"chat-core/domain"
	"chat-core/errors"
	"sync"

	"github.com/samber/lo"
)

type memberSet map[domain.ClientID]struct{}

// GroupRegistry maps group names to member identities. A group exists from
// its creation until process exit; membership of a disconnected client is
// never purged (known staleness, kept to match the base behavior). Every
// query checks existence explicitly so a lookup can never fabricate an
// empty group.
type GroupRegistry struct {
	mu     sync.RWMutex
	groups map[string]memberSet
}

func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{groups: make(map[string]memberSet)}
}

// Create registers a new group with the creator as its first member.
func (r *GroupRegistry) Create(name string, creator domain.ClientID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[name]; ok {
		return errors.ErrGroupExists
	}
	r.groups[name] = memberSet{creator: {}}
	return nil
}

func (r *GroupRegistry) Join(name string, id domain.ClientID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groups[name]
	if !ok {
		return errors.ErrNoSuchGroup
	}
	if _, member := members[id]; member {
		return errors.ErrAlreadyMember
	}
	members[id] = struct{}{}
	return nil
}

// Leave removes the member. The group entry survives even when its last
// member leaves.
func (r *GroupRegistry) Leave(name string, id domain.ClientID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groups[name]
	if !ok {
		return errors.ErrNoSuchGroup
	}
	if _, member := members[id]; !member {
		return errors.ErrNotMember
	}
	delete(members, id)
	return nil
}

func (r *GroupRegistry) IsMember(name string, id domain.ClientID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groups[name]
	if !ok {
		return false
	}
	_, member := members[id]
	return member
}

// Members returns a snapshot of the member set for fan-out.
func (r *GroupRegistry) Members(name string) ([]domain.ClientID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groups[name]
	if !ok {
		return nil, errors.ErrNoSuchGroup
	}
	return lo.Keys(members), nil
}

func (r *GroupRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.groups)
}

func (r *GroupRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups)
}
