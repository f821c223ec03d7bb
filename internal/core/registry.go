package core

// Registry maps a stable login id to the currently active connection.
// It is mutated only from the hub goroutine and needs no locking.
type Registry struct {
	byLogin map[string]*Client
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{byLogin: make(map[string]*Client)}
}

// Bind records the mapping from loginID to client. A later bind for the
// same login id silently overwrites the previous one; the evicted
// connection is not notified.
func (r *Registry) Bind(loginID string, c *Client) {
	r.byLogin[loginID] = c
}

// Resolve looks up the connection for a login id. A miss is a normal
// outcome and means the recipient is currently offline.
func (r *Registry) Resolve(loginID string) (*Client, bool) {
	c, ok := r.byLogin[loginID]
	return c, ok
}

// Unbind removes every binding whose current connection is c. Idempotent.
func (r *Registry) Unbind(c *Client) {
	for id, bound := range r.byLogin {
		if bound == c {
			delete(r.byLogin, id)
		}
	}
}

// Len reports the number of active bindings.
func (r *Registry) Len() int {
	return len(r.byLogin)
}
