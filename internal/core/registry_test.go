package core

import "testing"

func TestRegistryBindOverwrites(t *testing.T) {
	reg := NewRegistry()

	a := NewClient("conn-a", "127.0.0.1:1111")
	b := NewClient("conn-b", "127.0.0.1:2222")

	reg.Bind("alice", a)
	reg.Bind("alice", b)

	got, ok := reg.Resolve("alice")
	if !ok {
		t.Fatalf("expected alice to resolve")
	}
	if got != b {
		t.Fatalf("expected rebind to return the newest connection, got %s", got.ID)
	}
}

func TestRegistryResolveMissing(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Resolve("nobody"); ok {
		t.Fatalf("expected miss for unknown login id")
	}
}

func TestRegistryUnbindRemovesOnlyMatchingConnection(t *testing.T) {
	reg := NewRegistry()

	a := NewClient("conn-a", "")
	b := NewClient("conn-b", "")

	reg.Bind("alice", a)
	reg.Bind("bob", b)

	reg.Unbind(a)
	if _, ok := reg.Resolve("alice"); ok {
		t.Fatalf("expected alice binding gone after unbind")
	}
	if got, ok := reg.Resolve("bob"); !ok || got != b {
		t.Fatalf("expected bob binding untouched")
	}

	// Idempotent.
	reg.Unbind(a)
	if reg.Len() != 1 {
		t.Fatalf("expected one binding left, got %d", reg.Len())
	}
}

func TestRegistryUnbindSkipsRebounds(t *testing.T) {
	reg := NewRegistry()

	a := NewClient("conn-a", "")
	b := NewClient("conn-b", "")

	reg.Bind("alice", a)
	reg.Bind("alice", b)

	// The stale connection disconnects after alice rebound elsewhere; the
	// fresh binding must survive.
	reg.Unbind(a)

	if got, ok := reg.Resolve("alice"); !ok || got != b {
		t.Fatalf("expected alice still bound to conn-b")
	}
}
