package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

var Roles = []string{RoleAdmin, RoleViewer}

func IsValidRole(r string) bool { return contains(Roles, r) }

// User is a system account. The password hash never leaves the service layer:
// every client-facing projection goes through Sanitized.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string `gorm:"size:255;not null" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:32;not null" json:"role"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) Sanitized() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthenticatedUser is the identity claim carried by a session token and
// attached to the request context after authentication.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateUserInput covers both self-service registration and admin-driven
// user creation.
type CreateUserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserInput is the PUT /users/{id} payload.
type UpdateUserInput struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
	Role  *string `json:"role"`
}

func (p *UpdateUserInput) IsEmpty() bool { return len(p.Changes()) == 0 }

func (p *UpdateUserInput) Changes() map[string]any {
	m := map[string]any{}
	if p.Email != nil {
		m["email"] = *p.Email
	}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Role != nil {
		m["role"] = *p.Role
	}
	return m
}

// LoginInput is the POST /auth/login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordInput is the POST /auth/change-password payload.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
