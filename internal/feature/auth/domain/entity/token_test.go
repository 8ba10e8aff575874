package entity

import (
	"testing"
	"time"
)

func TestAccessToken_IsExpired(t *testing.T) {
	now := time.Now()

	active := &AccessToken{ExpiresAt: now.Add(time.Hour)}
	if active.IsExpired() {
		t.Errorf("token expiring in the future reported as expired")
	}

	expired := &AccessToken{ExpiresAt: now.Add(-time.Hour)}
	if !expired.IsExpired() {
		t.Errorf("token expired an hour ago reported as active")
	}
}
