package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_Valid(t *testing.T) {
	for _, role := range []UserRole{RolePatient, RoleDoctor, RoleVolunteer} {
		assert.True(t, role.Valid(), role)
	}
	for _, role := range []UserRole{"", "admin", "Patient"} {
		assert.False(t, role.Valid(), role)
	}
}

func TestSession_Active(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	assert.True(t, (&Session{ExpiresAt: now.Add(time.Hour)}).Active(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(-time.Second)}).Active(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}).Active(now))
}
