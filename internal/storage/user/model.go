package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is the owner record accounts hang off. Registration and credential
// storage are handled elsewhere; the ledger only resolves identity.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// Reader resolves owners by email.
type Reader interface {
	// FindByEmail returns (nil, nil) when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
