package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind a session cookie. UserID is a weak
// reference: deleting the user does not cascade here.
type Session struct {
	BaseSimple
	Token     uuid.UUID  `db:"token"`
	UserID    uuid.UUID  `db:"user_id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	Role      UserRole   `db:"role"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Active reports whether the session can still authenticate requests at now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
