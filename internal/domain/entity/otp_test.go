package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPIsValid(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	live := &OTP{ExpiresAt: now.Add(5 * time.Minute)}
	expired := &OTP{ExpiresAt: now.Add(-time.Second)}
	boundary := &OTP{ExpiresAt: now}

	assert.True(t, live.IsValid(now))
	assert.False(t, expired.IsValid(now))
	assert.True(t, boundary.IsValid(now))
}
