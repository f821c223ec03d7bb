package core

import (
	"reflect"
	"testing"
)

func TestRoomTableCreateDuplicateIsNoOp(t *testing.T) {
	table := NewRoomTable()

	a := NewClient("conn-a", "")
	b := NewClient("conn-b", "")

	table.Create("r1", "Room 1", "alice", a)
	table.Create("r1", "Other name", "bob", b)

	room, ok := table.Get("r1")
	if !ok {
		t.Fatalf("expected room r1")
	}
	if room.Name != "Room 1" || room.Owner != "alice" {
		t.Fatalf("existing room metadata was overwritten: %+v", room)
	}
	if got := room.Members(); !reflect.DeepEqual(got, []string{"conn-a"}) {
		t.Fatalf("expected only the first creator as member, got %v", got)
	}
}

func TestRoomTableUpdateMaterializesUnknownRoom(t *testing.T) {
	table := NewRoomTable()

	table.Update("ghost", "Ghost", "alice")

	room, ok := table.Get("ghost")
	if !ok {
		t.Fatalf("update on unknown id must materialize metadata")
	}
	if room.Name != "Ghost" || room.Owner != "alice" {
		t.Fatalf("unexpected metadata: %+v", room)
	}
	if len(room.Members()) != 0 {
		t.Fatalf("materialized room must have no members")
	}
}

func TestRoomTableUpdateOverwritesMetadata(t *testing.T) {
	table := NewRoomTable()
	a := NewClient("conn-a", "")

	table.Create("r1", "Room 1", "alice", a)
	table.Update("r1", "Renamed", "bob")

	room, _ := table.Get("r1")
	if room.Name != "Renamed" || room.Owner != "bob" {
		t.Fatalf("expected metadata overwrite, got %+v", room)
	}
	if got := room.Members(); !reflect.DeepEqual(got, []string{"conn-a"}) {
		t.Fatalf("membership must survive update, got %v", got)
	}
}

// Delete drops the whole room record even when other connections are
// still members. Existing clients depend on the room vanishing from the
// listing in one step.
func TestRoomTableDeleteDropsWholeRecord(t *testing.T) {
	table := NewRoomTable()

	a := NewClient("conn-a", "")
	b := NewClient("conn-b", "")

	table.Create("r1", "Room 1", "alice", a)
	room, _ := table.Get("r1")
	room.addMember(b.ID)

	table.Delete("r1", b)

	if _, ok := table.Get("r1"); ok {
		t.Fatalf("expected whole room record dropped despite remaining member conn-a")
	}
	if len(table.List()) != 0 {
		t.Fatalf("expected empty listing after delete")
	}
}

func TestRoomTableDeleteUnknownRoomIsNoOp(t *testing.T) {
	table := NewRoomTable()
	a := NewClient("conn-a", "")

	table.Delete("ghost", a)

	if len(table.List()) != 0 {
		t.Fatalf("expected empty listing")
	}
}

func TestRoomTableListFiltersSelfRooms(t *testing.T) {
	table := NewRoomTable()

	a := NewClient("conn-a", "")
	b := NewClient("conn-b", "")

	table.JoinSelf(a)
	table.JoinSelf(b)
	table.Create("r1", "Room 1", "alice", a)

	list := table.List()
	if len(list) != 1 {
		t.Fatalf("expected only the real room, got %d entries", len(list))
	}
	if list[0].ID != "r1" {
		t.Fatalf("expected r1, got %s", list[0].ID)
	}
}

func TestRoomTableListInsertionOrderIsStable(t *testing.T) {
	table := NewRoomTable()
	a := NewClient("conn-a", "")

	table.Create("r2", "Second", "alice", a)
	table.Create("r1", "First", "alice", a)
	table.Create("r3", "Third", "alice", a)

	var ids []string
	for _, info := range table.List() {
		ids = append(ids, info.ID)
	}
	want := []string{"r2", "r1", "r3"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected insertion order %v, got %v", want, ids)
	}
}

func TestRoomTableLeaveSelfKeepsNamedMemberships(t *testing.T) {
	table := NewRoomTable()

	a := NewClient("conn-a", "")
	b := NewClient("conn-b", "")

	table.JoinSelf(a)
	table.JoinSelf(b)
	table.Create("r1", "Room 1", "alice", a)

	table.LeaveSelf(a)

	if _, ok := table.Get(a.ID); ok {
		t.Fatalf("expected self room gone")
	}
	room, ok := table.Get("r1")
	if !ok {
		t.Fatalf("expected r1 to survive")
	}
	// Disconnect does not evict the connection from named rooms.
	if got := room.Members(); !reflect.DeepEqual(got, []string{"conn-a"}) {
		t.Fatalf("expected conn-a still listed as member, got %v", got)
	}
}
