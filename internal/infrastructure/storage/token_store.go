// Package storage persiste os artefatos de sessão no perfil do usuário,
// como par chave/valor em um arquivo JSON. Armazenamento em texto claro:
// risco aceito para esta classe de aplicação.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Chaves persistidas. O conjunto e a grafia vêm do contrato de estado já
// gravado nos navegadores dos usuários; "timestemp" (sic) é preservada para
// que sessões existentes continuem válidas.
const (
	KeyAuthToken    = "authToken"
	KeyRefreshToken = "refreshToken"
	KeyRoles        = "roles"
	KeyTimestemp    = "timestemp"
	KeyUser         = "user"
)

// TokenStore armazenamento chave/valor durável dos artefatos de sessão.
type TokenStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewTokenStore abre (ou cria) o arquivo de sessão. path vazio usa
// <dir-config-do-usuário>/graphixweb/session.json.
func NewTokenStore(path string) (*TokenStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "graphixweb", "session.json")
	}
	s := &TokenStore{path: path, values: map[string]string{}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get devolve o valor da chave e se ela está presente.
func (s *TokenStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set grava o valor da chave e persiste no disco.
func (s *TokenStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.save()
}

// Remove apaga a chave e persiste no disco.
func (s *TokenStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.save()
}

// Clear apaga todas as chaves de sessão.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]string{}
	return s.save()
}

func (s *TokenStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.values)
}

// save grava em arquivo temporário e renomeia, para não corromper a sessão
// se o processo morrer no meio da escrita.
func (s *TokenStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
