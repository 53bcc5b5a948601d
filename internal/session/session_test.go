package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m, err := NewManager("test-secret")
	require.NoError(t, err)

	token, sid, err := m.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sid)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sid, got)
}

func TestManager_UniqueSessions(t *testing.T) {
	m, err := NewManager("test-secret")
	require.NoError(t, err)

	_, sid1, err := m.Issue()
	require.NoError(t, err)
	_, sid2, err := m.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, sid1, sid2)
}

func TestManager_RejectsBadTokens(t *testing.T) {
	m, err := NewManager("test-secret")
	require.NoError(t, err)

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongKey", func(t *testing.T) {
		other, err := NewManager("other-secret")
		require.NoError(t, err)
		token, _, err := other.Issue()
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewManager_MissingKey(t *testing.T) {
	_, err := NewManager("")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	ctx = WithSessionID(ctx, "abc")
	sid, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", sid)
}
