// Package models holds the server-side domain types.
package models

import "time"

// Identity is a registered user. Email is the natural key; ID is assigned by
// the store when the record is created.
type Identity struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// PublicIdentity is the part of an Identity that may leave the server:
// it is embedded in tokens and returned in responses.
type PublicIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public projects the identity without its password hash.
func (i *Identity) Public() PublicIdentity {
	return PublicIdentity{ID: i.ID, Email: i.Email, Name: i.Name}
}
