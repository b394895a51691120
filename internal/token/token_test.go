package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	tok, exp, err := iss.Issue("abc123")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, err := iss.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "abc123", id)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	tok, _, err := NewIssuer("one", time.Hour).Issue("abc123")
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Verify(tok)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = NewIssuer("one", time.Hour).Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	start := time.Now()
	iss.now = func() time.Time { return start }
	tok, _, err := iss.Issue("abc123")
	require.NoError(t, err)

	iss.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = iss.Verify(tok)
	require.ErrorIs(t, err, ErrInvalid)
}
