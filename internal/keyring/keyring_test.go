package keyring_test

import (
	"testing"

	"github.com/alkime/fastgenius/internal/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestResolve(t *testing.T) {
	gokeyring.MockInit()

	t.Run("environment wins", func(t *testing.T) {
		require.NoError(t, keyring.Set(keyring.Together, "from-keychain"))

		got, err := keyring.Resolve(keyring.Together, "from-env")
		require.NoError(t, err)
		assert.Equal(t, "from-env", got)
	})

	t.Run("keychain fallback", func(t *testing.T) {
		require.NoError(t, keyring.Set(keyring.Together, "from-keychain"))

		got, err := keyring.Resolve(keyring.Together, "")
		require.NoError(t, err)
		assert.Equal(t, "from-keychain", got)
		assert.True(t, keyring.IsSet(keyring.Together))
	})

	t.Run("missing everywhere", func(t *testing.T) {
		require.NoError(t, keyring.Delete(keyring.Together))

		_, err := keyring.Resolve(keyring.Together, "")
		assert.Error(t, err)
		assert.False(t, keyring.IsSet(keyring.Together))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "together", keyring.Together.DisplayName())
	assert.Equal(t, []keyring.APIKey{keyring.Together}, keyring.AllAPIKeys())
}
