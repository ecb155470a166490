package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID            int64
	Email         string
	PasswordHash  string // never serialized; use ToPublic
	FirstName     string
	LastName      string
	Role          string
	IsActive      bool
	EmailVerified bool
	LastLogin     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicUser is the response shape of a user; it has no password field.
type PublicUser struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"isActive"`
	EmailVerified bool       `json:"emailVerified"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (u User) ToPublic() PublicUser {
	var lastLogin *time.Time
	if u.LastLogin != nil {
		t := u.LastLogin.UTC()
		lastLogin = &t
	}
	return PublicUser{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLogin:     lastLogin,
		CreatedAt:     u.CreatedAt.UTC(),
		UpdatedAt:     u.UpdatedAt.UTC(),
	}
}

// UserUpdate supports PUT-style partial updates via pointer presence.
type UserUpdate struct {
	Email         *string
	FirstName     *string
	LastName      *string
	IsActive      *bool
	EmailVerified *bool
}

func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil && u.IsActive == nil && u.EmailVerified == nil
}

// UserFilter is the validated filter part of a user list query.
type UserFilter struct {
	Role          *string
	IsActive      *bool
	EmailVerified *bool
	Search        string
}
