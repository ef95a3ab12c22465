// Package identity supplies the "who is logged in" collaborator: local
// credential verification and the signed tokens the sync path presents.
// The core never sees any of this; it only ever learns a stable user id.
package identity

import "errors"

var (
	ErrEmailTaken         = errors.New("identity: email already registered")
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrInvalidToken       = errors.New("identity: invalid token")
)

// Identity is the present form of the current-user contract: a stable
// opaque user id plus the email it was registered under. Absence is the
// zero value.
type Identity struct {
	UserID string
	Email  string
}

func (id Identity) Present() bool {
	return id.UserID != ""
}
