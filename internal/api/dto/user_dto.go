package dto

import "github.com/taskdesk/ticket-api/internal/domain"

// UserRequest payload for create and update. Password always arrives in
// plaintext and is hashed by the service layer.
type UserRequest struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Roles    domain.Role `json:"roles"`
}

// UserView is the external representation of a user. Password hash and
// roles are internal and never included.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest payload for authentication.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
