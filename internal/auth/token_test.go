package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("user-secret", RoleUser, 0)

	token, err := m.Issue("64f1c0ffee0000000000aaaa")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000aaaa", subject)
}

func TestVerifyRejectsCrossScopeTokens(t *testing.T) {
	userMgr := NewTokenManager("user-secret", RoleUser, 0)
	adminMgr := NewTokenManager("admin-secret", RoleAdmin, 0)

	adminToken, err := adminMgr.Issue("64f1c0ffee0000000000bbbb")
	require.NoError(t, err)

	_, err = userMgr.Verify(adminToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	userToken, err := userMgr.Issue("64f1c0ffee0000000000cccc")
	require.NoError(t, err)

	_, err = adminMgr.Verify(userToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongRoleUnderSharedSecret(t *testing.T) {
	// Same secret on both scopes must still not allow role crossover.
	userMgr := NewTokenManager("shared", RoleUser, 0)
	adminMgr := NewTokenManager("shared", RoleAdmin, 0)

	token, err := userMgr.Issue("64f1c0ffee0000000000dddd")
	require.NoError(t, err)

	_, err = adminMgr.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbageAndExpired(t *testing.T) {
	m := NewTokenManager("user-secret", RoleUser, -time.Minute)

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := m.Issue("64f1c0ffee0000000000eeee")
	require.NoError(t, err)

	_, err = m.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestZeroTTLTokensDoNotExpire(t *testing.T) {
	m := NewTokenManager("user-secret", RoleUser, 0)

	token, err := m.Issue("64f1c0ffee0000000000ffff")
	require.NoError(t, err)

	subject, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000ffff", subject)
}
