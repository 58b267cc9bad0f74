package credential

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(keyring.NewArrayKeyring(nil))
}

func TestStore_SetGetDelete(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.Set(PasswordKey, "hunter2"))

	got, err := store.Get(PasswordKey)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	require.NoError(t, store.Delete(PasswordKey))

	_, err = store.Get(PasswordKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Resolve(t *testing.T) {
	t.Run("設定値があればキーリングを参照しない", func(t *testing.T) {
		store := newTestStore()
		require.NoError(t, store.Set(TokenKey, "from-keyring"))

		got, err := store.Resolve("from-config", TokenKey)
		require.NoError(t, err)
		assert.Equal(t, "from-config", got)
	})

	t.Run("設定値が空ならキーリングの値を使う", func(t *testing.T) {
		store := newTestStore()
		require.NoError(t, store.Set(TokenKey, "from-keyring"))

		got, err := store.Resolve("", TokenKey)
		require.NoError(t, err)
		assert.Equal(t, "from-keyring", got)
	})

	t.Run("どちらにもなければ空文字列", func(t *testing.T) {
		got, err := newTestStore().Resolve("", PasswordKey)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
