package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/fitquest-api/backend/config"
	"github.com/fitquest/fitquest-api/fitquest"
	fqconfig "github.com/fitquest/fitquest-api/fitquest/config"
)

func newTestSessionService(key string, now time.Time) *SessionService {
	svc := NewSessionService(config.NewWebAppConfig(&fitquest.Config{
		Web: fitquest.WebConfig{SessionKey: key},
	}))
	svc.now = func() time.Time { return now }
	return svc
}

func TestSessionService_RoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	svc := newTestSessionService("secret", now)

	session := svc.NewUserSession(uuid.New(), "ana@example.com", "ana")
	assert.Equal(t, now.Add(fqconfig.SessionDuration), session.ExpiresAt)

	value, err := svc.EncodeSession(session)
	require.NoError(t, err)

	decoded, err := svc.DecodeSession(value)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, decoded.UserID)
	assert.Equal(t, "ana", decoded.Username)
	assert.True(t, session.ExpiresAt.Equal(decoded.ExpiresAt))
}

func TestSessionService_Rejects(t *testing.T) {
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	svc := newTestSessionService("secret", now)
	value, err := svc.EncodeSession(svc.NewUserSession(uuid.New(), "ana@example.com", "ana"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   *SessionService
		value string
	}{
		{
			name:  "other key",
			svc:   newTestSessionService("another-secret", now),
			value: value,
		},
		{
			name:  "not base64",
			svc:   svc,
			value: "%%%",
		},
		{
			name:  "too short",
			svc:   svc,
			value: "YWJj",
		},
		{
			name:  "tampered",
			svc:   svc,
			value: flipFirst(value),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.DecodeSession(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestSessionService_Expired(t *testing.T) {
	issued := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	svc := newTestSessionService("secret", issued)
	value, err := svc.EncodeSession(svc.NewUserSession(uuid.New(), "ana@example.com", "ana"))
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(fqconfig.SessionDuration + time.Second) }
	_, err = svc.DecodeSession(value)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionService_MissingKey(t *testing.T) {
	svc := newTestSessionService("", time.Now())
	_, err := svc.EncodeSession(svc.NewUserSession(uuid.New(), "ana@example.com", "ana"))
	assert.Error(t, err)
}

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	require.NoError(t, err)
	b, err := GenerateState()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.False(t, strings.ContainsAny(a, "+/="))
}

// flipFirst changes the first character so the decoded payload no longer matches its signature.
func flipFirst(s string) string {
	if s[0] == 'A' {
		return "B" + s[1:]
	}
	return "A" + s[1:]
}
