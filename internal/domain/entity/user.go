// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The hashed password travels with the entity so the login flow can verify
// credentials; it must never be serialized outward.
type User struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username       string    // The unique login identifier, restricted to letters, digits, '-' and '_'.
	Email          string    // The user's unique contact email.
	FullName       string    // Optional display name.
	HashedPassword string    // Salted bcrypt encoding of the user's password.
	IsActive       bool      // Inactive accounts keep their data but cannot act.
	CreatedAt      time.Time // Timestamp of when this user account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this user's data.
}
