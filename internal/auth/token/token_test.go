package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/errs"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager([]byte("test-secret"), "tasktrack", "tasktrack-clients", ttl)
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()
	m := newTestManager(2 * time.Hour)

	signed, err := m.Issue(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "tasktrack", claims.Issuer)
}

func TestParse_ExpiryBoundary(t *testing.T) {
	t.Parallel()
	m := newTestManager(2 * time.Hour)

	issuedAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	signed, err := m.Issue(1, "alice@example.com")
	require.NoError(t, err)

	// Still valid one hour in.
	m.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = m.Parse(signed)
	require.NoError(t, err)

	// Rejected one second past expiry.
	m.now = func() time.Time { return issuedAt.Add(2*time.Hour + time.Second) }
	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestParse_Rejections(t *testing.T) {
	t.Parallel()
	m := newTestManager(2 * time.Hour)

	foreign := NewManager([]byte("other-secret"), "tasktrack", "tasktrack-clients", 2*time.Hour)
	badIssuer := NewManager([]byte("test-secret"), "someone-else", "tasktrack-clients", 2*time.Hour)
	badAudience := NewManager([]byte("test-secret"), "tasktrack", "other-clients", 2*time.Hour)

	foreignTok, err := foreign.Issue(1, "a@b.c")
	require.NoError(t, err)
	badIssuerTok, err := badIssuer.Issue(1, "a@b.c")
	require.NoError(t, err)
	badAudienceTok, err := badAudience.Issue(1, "a@b.c")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"wrong signing key", foreignTok},
		{"wrong issuer", badIssuerTok},
		{"wrong audience", badAudienceTok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Parse(tt.token)
			assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		})
	}
}
