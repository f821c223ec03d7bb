package core

// Client is one live connection as seen by the core layer.
type Client struct {
	ID      string // connection id, assigned by the transport on accept
	Addr    string // remote address of the peer
	LoginID string // bound by the login command, empty while anonymous

	Commands chan *Command
	Events   chan *Event

	done chan struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id, addr string) *Client {
	return &Client{
		ID:       id,
		Addr:     addr,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
		done:     make(chan struct{}),
	}
}
