package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned by Create when the email unique index rejects
// the insert. Callers must treat it the same as a positive pre-check hit,
// it closes the race between the lookup and the insert.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the interface for user-related store operations.
// Accounts are only ever created and looked up by email; nothing in the
// served routes reads or edits a profile after signup.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
