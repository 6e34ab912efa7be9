package userstore

import (
	"context"
	"errors"

	"github.com/tikket/tikket-server/pkg/user"
)

// ErrUserNotFound is returned when a user lookup finds no matching record.
var ErrUserNotFound = errors.New("user not found")

// ErrSessionNotFound is returned when a session lookup finds no matching record.
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for user and session reads.
// The rows are owned by the external auth system, so the only write exposed
// here is the test-seeding CreateUser/CreateSession pair.
type Store interface {
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	UserExists(ctx context.Context, id string) (bool, error)
	GetSessionByToken(ctx context.Context, token string) (*user.Session, error)

	CreateUser(ctx context.Context, usr *user.User) error
	CreateSession(ctx context.Context, sess *user.Session) error
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID    *string
	Email *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID sets the user id filter
func WithID(id string) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithEmail sets the email filter
func WithEmail(email string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Email = &email
	}
}
