package models

import "github.com/moim-labs/moim/ent"

// CreateUserRequest contains fields for registering a user
type CreateUserRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone,omitempty"`
}

// UserResponse wraps a User (tokens are Sensitive and never serialized)
type UserResponse struct {
	*ent.User
}
