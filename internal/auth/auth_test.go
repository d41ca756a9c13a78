package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	v := NewVerifier("secret")

	token, err := v.Issue("user_42", time.Hour)
	require.NoError(t, err)

	userID, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user_42", userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewVerifier("one").Issue("u", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("two").Verify(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier("secret")
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return issued }

	token, err := v.Issue("u", time.Minute)
	require.NoError(t, err)

	v.now = func() time.Time { return issued.Add(time.Hour) }
	_, err = v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewVerifier("secret").Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_RequiresUser(t *testing.T) {
	_, err := NewVerifier("secret").Issue("", time.Hour)
	assert.Error(t, err)
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)

	id, ok := UserID(WithUserID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = UserID(WithUserID(context.Background(), ""))
	assert.False(t, ok)
}
