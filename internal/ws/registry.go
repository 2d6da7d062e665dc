package ws

import (
	"sync"
)

// Registry is the shared map from user identity to that user's live
// connections. A user with no live sockets has no entry at all, so key
// absence is the liveness check.
type Registry struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]bool
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[uint]map[*Client]bool),
	}
}

// Register adds the connection to the user's live set, creating the set
// if absent. Registering the same connection twice has no effect.
func (r *Registry) Register(userID uint, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.clients[userID]
	if !ok {
		set = make(map[*Client]bool)
		r.clients[userID] = set
	}
	set[client] = true
}

// Deregister removes the connection from the user's set and drops the
// entry entirely once the set is empty.
func (r *Registry) Deregister(userID uint, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.clients[userID]
	if !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(r.clients, userID)
	}
}

// ConnectionsFor returns a snapshot of the user's live connections.
func (r *Registry) ConnectionsFor(userID uint) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.clients[userID]
	snapshot := make([]*Client, 0, len(set))
	for client := range set {
		snapshot = append(snapshot, client)
	}
	return snapshot
}

// AllConnections returns a snapshot across every user, for global fan-out.
func (r *Registry) AllConnections() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var snapshot []*Client
	for _, set := range r.clients {
		for client := range set {
			snapshot = append(snapshot, client)
		}
	}
	return snapshot
}

// ConnectionCount reports the number of live connections across all users.
func (r *Registry) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, set := range r.clients {
		count += len(set)
	}
	return count
}
