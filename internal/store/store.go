package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// User represents a registered user.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Age          int64 // -1 when not provided
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Post represents an auction post. Price and Bidder track the current
// highest bid and are overwritten by price update events.
type Post struct {
	ID        string // UUID
	OwnerID   int64
	Title     string
	Content   string
	Photo     string // relative path under the upload dir, empty if none
	Price     int64
	Bidder    string
	CreatedAt time.Time
}

// UserStore handles user persistence.
type UserStore interface {
	// CreateUser creates a new user with an already hashed password.
	CreateUser(ctx context.Context, username, passwordHash, name string, age int64) (*User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id int64) (*User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]*User, error)
}

// PostStore handles auction post persistence.
type PostStore interface {
	// CreatePost persists a new post.
	CreatePost(ctx context.Context, post *Post) error

	// GetPostByID retrieves a post by ID.
	GetPostByID(ctx context.Context, id string) (*Post, error)

	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context) ([]*Post, error)

	// UpdatePostPrice sets the current price and bidder of a post.
	// Returns ErrNotFound when no post matches id.
	UpdatePostPrice(ctx context.Context, id string, price int64, bidder string) error
}

// Store aggregates all storage interfaces.
type Store interface {
	UserStore
	PostStore

	// Close closes the underlying database connection.
	Close() error
}
