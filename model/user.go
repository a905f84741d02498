package model

import (
	"time"

	"github.com/muhammadheryan/buyer-leads/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID           string        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Email        string        `db:"email" json:"email"`
	Role         constant.Role `db:"role" json:"role"`
	PasswordHash string        `db:"password_hash" json:"-"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Email string
}

// Actor is the authenticated user performing a request.
type Actor struct {
	ID   string        `json:"id"`
	Role constant.Role `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// CanModify reports whether the actor may edit or delete a buyer owned by ownerID.
func (a Actor) CanModify(ownerID string) bool {
	return a.IsAdmin() || a.ID == ownerID
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
	Token string        `json:"token"`
}
