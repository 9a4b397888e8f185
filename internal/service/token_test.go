package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService(TokenConfig{
		Secret:     "testsecret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)
	return ts
}

func TestNewTokenService(t *testing.T) {
	// 缺密鑰
	_, err := NewTokenService(TokenConfig{AccessTTL: time.Minute, RefreshTTL: time.Minute})
	require.Error(t, err)

	// TTL 非正數
	_, err = NewTokenService(TokenConfig{Secret: "s", AccessTTL: 0, RefreshTTL: time.Minute})
	require.Error(t, err)

	_, err = NewTokenService(TokenConfig{Secret: "s", AccessTTL: time.Minute, RefreshTTL: time.Minute})
	require.NoError(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	ts := newTestService(t)

	tok, err := ts.Issue("librarian@example.com", TokenAccess)
	require.NoError(t, err)

	claims, err := ts.Verify(tok, TokenAccess)
	require.NoError(t, err)
	require.Equal(t, "librarian@example.com", claims.Subject)
	require.Equal(t, TokenAccess, claims.Kind)
}

func TestVerifyKindMismatch(t *testing.T) {
	ts := newTestService(t)

	access, err := ts.Issue("a@b.c", TokenAccess)
	require.NoError(t, err)
	refresh, err := ts.Issue("a@b.c", TokenRefresh)
	require.NoError(t, err)

	// access 令牌不能當 refresh 用，反之亦然
	_, err = ts.Verify(access, TokenRefresh)
	require.Error(t, err)
	_, err = ts.Verify(refresh, TokenAccess)
	require.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	ts, err := NewTokenService(TokenConfig{
		Secret:     "testsecret",
		AccessTTL:  -time.Minute,
		RefreshTTL: time.Hour,
	})
	// 建構時擋掉非正 TTL
	require.Error(t, err)
	require.Nil(t, ts)

	// 過期令牌以短 TTL 驗證
	short, err := NewTokenService(TokenConfig{
		Secret:     "testsecret",
		AccessTTL:  time.Millisecond,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)

	tok, err := short.Issue("a@b.c", TokenAccess)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = short.Verify(tok, TokenAccess)
	require.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	ts := newTestService(t)
	other, err := NewTokenService(TokenConfig{
		Secret:     "othersecret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)

	tok, err := ts.Issue("a@b.c", TokenAccess)
	require.NoError(t, err)

	_, err = other.Verify(tok, TokenAccess)
	require.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	ts := newTestService(t)
	_, err := ts.Verify("not-a-token", TokenAccess)
	require.Error(t, err)
}

func TestIssuePair(t *testing.T) {
	ts := newTestService(t)

	access, refresh, err := ts.IssuePair("librarian@example.com")
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	ac, err := ts.Verify(access, TokenAccess)
	require.NoError(t, err)
	require.Equal(t, TokenAccess, ac.Kind)

	rc, err := ts.Verify(refresh, TokenRefresh)
	require.NoError(t, err)
	require.Equal(t, TokenRefresh, rc.Kind)
	require.Equal(t, ac.Subject, rc.Subject)
}
