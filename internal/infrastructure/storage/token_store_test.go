package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/storage"
)

func newStore(t *testing.T) (*storage.TokenStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := storage.NewTokenStore(path)
	require.NoError(t, err, "deve abrir o armazenamento")
	return s, path
}

func TestSetGetRemove(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.Set(storage.KeyAuthToken, "t1"))

	v, ok := s.Get(storage.KeyAuthToken)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	require.NoError(t, s.Remove(storage.KeyAuthToken))
	_, ok = s.Get(storage.KeyAuthToken)
	assert.False(t, ok, "chave removida não deve existir")
}

func TestPersisteEntreAberturas(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, s.Set(storage.KeyAuthToken, "t1"))
	require.NoError(t, s.Set(storage.KeyRefreshToken, "r1"))

	// Reabre o mesmo arquivo, como em uma nova execução do cliente.
	reopened, err := storage.NewTokenStore(path)
	require.NoError(t, err)

	v, ok := reopened.Get(storage.KeyAuthToken)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
	v, _ = reopened.Get(storage.KeyRefreshToken)
	assert.Equal(t, "r1", v)
}

func TestClearApagaTodasAsChaves(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, s.Set(storage.KeyAuthToken, "t1"))
	require.NoError(t, s.Set(storage.KeyRoles, `["Operator"]`))
	require.NoError(t, s.Set(storage.KeyTimestemp, "2026-08-29T10:00:00Z"))

	require.NoError(t, s.Clear())

	for _, key := range []string{storage.KeyAuthToken, storage.KeyRoles, storage.KeyTimestemp} {
		_, ok := s.Get(key)
		assert.False(t, ok, "chave %s deve ter sido apagada", key)
	}

	// O arquivo persistido também deve ficar vazio.
	reopened, err := storage.NewTokenStore(path)
	require.NoError(t, err)
	_, ok := reopened.Get(storage.KeyAuthToken)
	assert.False(t, ok)
}

func TestArquivoComPermissaoRestrita(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, s.Set(storage.KeyAuthToken, "t1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "o arquivo de sessão não deve ser legível por outros usuários")
}

func TestCriaDiretorioQuandoNecessario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "session.json")
	s, err := storage.NewTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(storage.KeyAuthToken, "t1"))

	_, err = os.Stat(path)
	assert.NoError(t, err, "o arquivo deve existir após o primeiro Set")
}
