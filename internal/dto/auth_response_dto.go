package dto

import "time"

// LoginRequest is the operator password gate. There is a single
// operator credential, held as a bcrypt hash in configuration.
type LoginRequest struct {
	Operator string `json:"operator" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token issued on a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
