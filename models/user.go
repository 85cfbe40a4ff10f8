package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is assigned by the database on creation and never changes.
	ID int64 `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	// It is immutable after registration; there is no rename operation.
	Username string `json:"username"`

	// Email is the optional contact address. When present it is unique
	// across all accounts; absent emails never collide with each other.
	Email *string `json:"email,omitempty"`

	// FullName is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName *string `json:"full_name,omitempty"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	HashedPassword string `json:"-"`

	// Disabled marks the account as inactive. A disabled account fails
	// authentication even when the supplied credentials are correct.
	Disabled bool `json:"disabled"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate enumerates the mutable account fields for an update
// operation. Nil pointers mean "leave unchanged". Immutable fields
// (ID, Username, Email, CreatedAt) are deliberately absent so they
// cannot be touched by an update.
type ProfileUpdate struct {
	// ID identifies the account to update; it is the sole identity key.
	ID int64

	// FullName replaces the display name when non-nil.
	FullName *string

	// Disabled toggles the active/inactive flag when non-nil.
	Disabled *bool

	// HashedPassword replaces the stored credential digest when non-nil.
	// Callers must supply hasher output here, never plaintext.
	HashedPassword *string
}
