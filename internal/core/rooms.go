package core

// Room is a named, owned group of connections. Membership is tracked by
// connection id. Members are kept in join order so listings are
// deterministic for a given membership snapshot.
type Room struct {
	ID    string
	Name  string
	Owner string

	members map[string]struct{}
	order   []string
}

func newRoom(id, name, owner string) *Room {
	return &Room{
		ID:      id,
		Name:    name,
		Owner:   owner,
		members: make(map[string]struct{}),
	}
}

func (r *Room) addMember(connID string) {
	if _, ok := r.members[connID]; ok {
		return
	}
	r.members[connID] = struct{}{}
	r.order = append(r.order, connID)
}

func (r *Room) removeMember(connID string) {
	if _, ok := r.members[connID]; !ok {
		return
	}
	delete(r.members, connID)
	for i, id := range r.order {
		if id == connID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Members returns the member connection ids in join order.
func (r *Room) Members() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// RoomInfo is an immutable snapshot of a room used in listings.
type RoomInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Owner   string   `json:"owner"`
	Members []string `json:"members"`
}

// RoomTable maps room ids to room records. Every connection additionally
// occupies a self room whose id equals its own connection id; those are
// filtered out of listings. Mutated only from the hub goroutine.
type RoomTable struct {
	rooms map[string]*Room
	order []string
}

// NewRoomTable constructs an empty room table.
func NewRoomTable() *RoomTable {
	return &RoomTable{rooms: make(map[string]*Room)}
}

// Create makes a new room and joins the creator. If the room id already
// exists this is a no-op: the existing room wins and the creator does not
// join or overwrite its metadata.
func (t *RoomTable) Create(roomID, name, owner string, c *Client) {
	if _, ok := t.rooms[roomID]; ok {
		return
	}
	room := newRoom(roomID, name, owner)
	room.addMember(c.ID)
	t.insert(room)
}

// Update overwrites room metadata unconditionally. An unknown room id
// materializes a record with the given metadata and no members. That
// matches the behavior this table replaces; callers relying on
// existence checks must do them beforehand.
func (t *RoomTable) Update(roomID, name, owner string) {
	room, ok := t.rooms[roomID]
	if !ok {
		t.insert(newRoom(roomID, name, owner))
		return
	}
	room.Name = name
	room.Owner = owner
}

// Delete removes c from the room's membership and, if the room record
// exists, drops the whole record even when other connections remain
// members. Deleting a non-existent room is a no-op beyond the leave.
func (t *RoomTable) Delete(roomID string, c *Client) {
	room, ok := t.rooms[roomID]
	if !ok {
		return
	}
	room.removeMember(c.ID)
	t.remove(roomID)
}

// JoinSelf materializes the implicit self room for a connection.
func (t *RoomTable) JoinSelf(c *Client) {
	if _, ok := t.rooms[c.ID]; ok {
		return
	}
	room := newRoom(c.ID, "", "")
	room.addMember(c.ID)
	t.insert(room)
}

// LeaveSelf drops the implicit self room on disconnect. Memberships in
// other rooms are intentionally left in place.
func (t *RoomTable) LeaveSelf(c *Client) {
	t.remove(c.ID)
}

// List returns snapshots of every room whose id does not equal one of its
// own members' connection ids, in insertion order.
func (t *RoomTable) List() []RoomInfo {
	out := make([]RoomInfo, 0, len(t.order))
	for _, id := range t.order {
		room := t.rooms[id]
		if _, self := room.members[room.ID]; self {
			continue
		}
		out = append(out, RoomInfo{
			ID:      room.ID,
			Name:    room.Name,
			Owner:   room.Owner,
			Members: room.Members(),
		})
	}
	return out
}

// Get returns the room record for id, if present.
func (t *RoomTable) Get(id string) (*Room, bool) {
	room, ok := t.rooms[id]
	return room, ok
}

func (t *RoomTable) insert(room *Room) {
	t.rooms[room.ID] = room
	t.order = append(t.order, room.ID)
}

func (t *RoomTable) remove(id string) {
	if _, ok := t.rooms[id]; !ok {
		return
	}
	delete(t.rooms, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}
