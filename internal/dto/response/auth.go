package response

import (
	"time"

	"telehealth-portal/internal/data/entity"
)

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     entity.UserRole `json:"role"`
}

// AuthResult carries the public user plus the session to deliver as a cookie.
// An empty Token means no session could be established.
type AuthResult struct {
	User      UserResponse
	Token     string
	ExpiresAt time.Time
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func AuthToResult(user *entity.User, session *entity.Session) *AuthResult {
	result := &AuthResult{User: UserToResponse(user)}
	if session != nil {
		result.Token = session.Token.String()
		result.ExpiresAt = session.ExpiresAt
	}
	return result
}
