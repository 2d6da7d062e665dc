package ws

import (
	"sync"
	"testing"
)

func newTestClient(userID uint) *Client {
	return NewClient(nil, nil, userID)
}

func TestRegistry_RegisterDeregister(t *testing.T) {
	registry := NewRegistry()

	c1 := newTestClient(1)
	c2 := newTestClient(1)

	registry.Register(1, c1)
	registry.Register(1, c2)
	// Re-registering the same connection has no effect.
	registry.Register(1, c1)

	conns := registry.ConnectionsFor(1)
	if len(conns) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(conns))
	}

	registry.Deregister(1, c1)
	conns = registry.ConnectionsFor(1)
	if len(conns) != 1 || conns[0] != c2 {
		t.Fatalf("expected only c2 to remain, got %d connections", len(conns))
	}

	registry.Deregister(1, c2)
	if len(registry.ConnectionsFor(1)) != 0 {
		t.Fatal("expected no connections after deregistering all")
	}

	// The map entry must be gone, not merely empty.
	registry.mu.RLock()
	_, present := registry.clients[1]
	registry.mu.RUnlock()
	if present {
		t.Fatal("expected user entry to be removed when last connection leaves")
	}
}

func TestRegistry_DeregisterUnknown(t *testing.T) {
	registry := NewRegistry()

	// Must not panic or create entries.
	registry.Deregister(42, newTestClient(42))

	if registry.ConnectionCount() != 0 {
		t.Fatal("expected empty registry")
	}
}

func TestRegistry_AllConnections(t *testing.T) {
	registry := NewRegistry()

	clients := []*Client{newTestClient(1), newTestClient(1), newTestClient(2), newTestClient(3)}
	for _, c := range clients {
		registry.Register(c.UserID(), c)
	}

	all := registry.AllConnections()
	if len(all) != len(clients) {
		t.Fatalf("expected %d connections, got %d", len(clients), len(all))
	}

	seen := make(map[*Client]bool)
	for _, c := range all {
		if seen[c] {
			t.Fatal("connection appeared twice in snapshot")
		}
		seen[c] = true
	}
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	registry := NewRegistry()

	c1 := newTestClient(1)
	registry.Register(1, c1)

	snapshot := registry.ConnectionsFor(1)
	registry.Deregister(1, c1)

	// The earlier snapshot is unaffected by the mutation.
	if len(snapshot) != 1 {
		t.Fatal("snapshot mutated by concurrent deregistration")
	}
	if registry.ConnectionCount() != 0 {
		t.Fatal("registry should be empty")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c := newTestClient(userID)
				registry.Register(userID, c)
				registry.AllConnections()
				registry.ConnectionsFor(userID)
				registry.Deregister(userID, c)
			}
		}(uint(i % 4))
	}
	wg.Wait()

	if registry.ConnectionCount() != 0 {
		t.Fatalf("expected empty registry after balanced register/deregister, got %d", registry.ConnectionCount())
	}
}
