package model

import (
	"time"
)

type User struct {
	ID                   int64     `db:"id"`
	Username             string    `db:"username"`
	Email                *string   `db:"email"` // Nullable: accounts can be created without an email
	PasswordHash         string    `db:"password_hash"`
	IsVerified           bool      `db:"is_verified"`
	VerificationToken    *string   `db:"verification_token"`
	NewsletterSubscribed bool      `db:"newsletter_subscribed"`
	CreatedAt            time.Time `db:"created_at"`
}

// UserProjection is the client-facing view of a user. Credential material
// (password hash, verification token) never leaves the server.
type UserProjection struct {
	ID                   int64      `json:"id"`
	Username             string     `json:"username"`
	Email                *string    `json:"email"`
	IsVerified           bool       `json:"is_verified"`
	NewsletterSubscribed bool       `json:"newsletter_subscribed"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
}

func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:                   u.ID,
		Username:             u.Username,
		Email:                u.Email,
		IsVerified:           u.IsVerified,
		NewsletterSubscribed: u.NewsletterSubscribed,
	}
}

func (u *User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}
