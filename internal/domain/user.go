package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	Deleted      bool       `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Email     *string `json:"email,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	RoleID    *int    `json:"role_id,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Deleted   *bool   `json:"deleted,omitempty"`
}

// Claims is the JWT payload issued at login and carried on every
// authenticated request.
type Claims struct {
	UserID        int     `json:"user_id"`
	UserName      string  `json:"user_name"`
	UserLastname  string  `json:"user_lastname"`
	UserEmail     string  `json:"user_email"`
	UserActive    bool    `json:"user_active"`
	UserRoleID    int     `json:"user_role_id"`
	UserAvatarURL *string `json:"user_avatar_url,omitempty"`
	jwt.RegisteredClaims
}
