package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/application/session"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/storage"
	"github.com/kaiiquetome/GraphixWeb/pkg/token"
)

const testSecret = "segredo-de-teste"

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso de autenticação
// ──────────────────────────────────────────────────────────────────────────────

// authServer emula /auth/login e /auth/refresh-token com contagem de chamadas.
type authServer struct {
	mu           sync.Mutex
	loginCalls   int
	refreshCalls int
	refreshDelay time.Duration
	failRefresh  bool
}

func (s *authServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.loginCalls++
		s.mu.Unlock()

		var in dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.UserName != "op1" || in.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(s.respond("t-login"))
	})
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.refreshCalls++
		fail := s.failRefresh
		delay := s.refreshDelay
		s.mu.Unlock()

		time.Sleep(delay)
		if fail {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(s.respond("t-refresh"))
	})
	return mux
}

func (s *authServer) respond(kind string) dto.AuthResponse {
	jwt, _ := token.Generate(testSecret, "graphixweb-test", token.Claims{
		UserID: 7,
		Name:   "Operador Um",
		Login:  "op1",
		Roles:  []string{"Operator"},
	}, 60)
	return dto.AuthResponse{
		JwtToken:     jwt,
		RefreshToken: "refresh-" + kind,
		Roles:        []string{"Operator"},
		User:         dto.UserInfo{ID: 7, Name: "Operador Um", Login: "op1", Profile: "Operador"},
	}
}

func newController(t *testing.T, srv *authServer, ttl time.Duration) (*session.Controller, *storage.TokenStore) {
	t.Helper()
	hs := httptest.NewServer(srv.handler())
	t.Cleanup(hs.Close)

	store, err := storage.NewTokenStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	anon := rest.New(rest.Options{BaseURL: hs.URL})
	return session.NewController(store, anon, ttl, nil), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginPersisteSessaoENotificaUmaVez(t *testing.T) {
	srv := &authServer{}
	c, store := newController(t, srv, 0)

	var events []session.Event
	c.Subscribe(func(ev session.Event) { events = append(events, ev) })

	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))

	assert.True(t, c.IsAuthenticated())
	assert.Equal(t, session.StateAuthenticated, c.State())
	assert.Equal(t, []string{"Operator"}, c.Roles())

	// As cinco chaves de sessão devem estar persistidas.
	for _, key := range []string{
		storage.KeyAuthToken, storage.KeyRefreshToken,
		storage.KeyRoles, storage.KeyTimestemp, storage.KeyUser,
	} {
		_, ok := store.Get(key)
		assert.True(t, ok, "chave %s deve estar persistida após o login", key)
	}

	require.Len(t, events, 1, "login deve notificar exatamente uma vez")
	assert.Equal(t, "login", events[0].Reason)
	assert.Empty(t, events[0].Redirect)
}

func TestLoginComCredenciaisInvalidas(t *testing.T) {
	srv := &authServer{}
	c, _ := newController(t, srv, 0)

	err := c.Login(context.Background(), "op1", "senha-errada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, c.IsAuthenticated())
	assert.Equal(t, session.StateAnonymous, c.State())
}

// ──────────────────────────────────────────────────────────────────────────────
// Token e refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestTokenSemSessaoDevolveVazio(t *testing.T) {
	srv := &authServer{}
	c, _ := newController(t, srv, 0)

	tok, err := c.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok, "sem sessão o header Authorization é omitido")
}

func TestTokenDentroDaJanelaNaoRenova(t *testing.T) {
	srv := &authServer{}
	c, _ := newController(t, srv, 0)
	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))

	_, err := c.Token(context.Background())
	require.NoError(t, err)
	assert.Zero(t, srv.refreshCalls, "token dentro da janela não dispara refresh")
}

func TestTokenExpiradoRenovaUmaVez(t *testing.T) {
	srv := &authServer{}
	c, _ := newController(t, srv, 0)
	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))

	// Avança o relógio para além da janela local de 15 minutos.
	c.SetClock(func() time.Time { return time.Now().Add(20 * time.Minute) })

	tok, err := c.Token(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, 1, srv.refreshCalls, "expiração local deve disparar exatamente um refresh")

	// O relógio avançado agora está dentro da nova janela: sem novo refresh.
	_, err = c.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, srv.refreshCalls)
}

func TestRefreshConcorrenteColapsaEmUm(t *testing.T) {
	srv := &authServer{refreshDelay: 50 * time.Millisecond}
	c, _ := newController(t, srv, 0)
	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))
	c.SetClock(func() time.Time { return time.Now().Add(20 * time.Minute) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := c.Token(context.Background())
			assert.NoError(t, err)
			assert.NotEmpty(t, tok)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, srv.refreshCalls, "chamadas concorrentes perto da expiração colapsam em um único refresh")
}

func TestRefreshFalhoDerrubaASessao(t *testing.T) {
	srv := &authServer{failRefresh: true}
	c, store := newController(t, srv, 0)
	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))

	var events []session.Event
	c.Subscribe(func(ev session.Event) { events = append(events, ev) })

	c.SetClock(func() time.Time { return time.Now().Add(20 * time.Minute) })

	_, err := c.Token(context.Background())
	assert.True(t, rest.IsUnauthorized(err), "refresh falho deve propagar sessão inválida")

	assert.False(t, c.IsAuthenticated())
	assert.Equal(t, session.StateAnonymous, c.State())
	_, ok := store.Get(storage.KeyAuthToken)
	assert.False(t, ok, "as chaves persistidas devem ser apagadas")

	require.Len(t, events, 1)
	assert.Equal(t, "unauthorized", events[0].Reason)
	assert.Equal(t, session.LoginRoute, events[0].Redirect, "a UI deve ser redirecionada para a tela de login")
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore e logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRestoreRecuperaSessaoPersistida(t *testing.T) {
	srv := &authServer{}
	hs := httptest.NewServer(srv.handler())
	t.Cleanup(hs.Close)

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := storage.NewTokenStore(path)
	require.NoError(t, err)
	anon := rest.New(rest.Options{BaseURL: hs.URL})

	first := session.NewController(store, anon, 0, nil)
	require.NoError(t, first.Login(context.Background(), "op1", "secret1"))

	// Nova execução do cliente: mesmo arquivo, novo controlador.
	reopened, err := storage.NewTokenStore(path)
	require.NoError(t, err)
	second := session.NewController(reopened, anon, 0, nil)

	var events []session.Event
	second.Subscribe(func(ev session.Event) { events = append(events, ev) })

	assert.True(t, second.Restore(context.Background()), "deve haver sessão gravada")
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, []string{"Operator"}, second.Roles())
	require.NotNil(t, second.User())
	assert.Equal(t, "op1", second.User().Login)

	require.Len(t, events, 1)
	assert.Equal(t, "restore", events[0].Reason)
}

func TestRestoreSemSessaoGravada(t *testing.T) {
	srv := &authServer{}
	c, _ := newController(t, srv, 0)
	assert.False(t, c.Restore(context.Background()))
	assert.Equal(t, session.StateAnonymous, c.State())
}

func TestLogoutLimpaENotificaComRedirecionamento(t *testing.T) {
	srv := &authServer{}
	c, store := newController(t, srv, 0)
	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))

	var events []session.Event
	c.Subscribe(func(ev session.Event) { events = append(events, ev) })

	c.Logout(context.Background())

	assert.False(t, c.IsAuthenticated())
	_, ok := store.Get(storage.KeyAuthToken)
	assert.False(t, ok)

	require.Len(t, events, 1)
	assert.Equal(t, "logout", events[0].Reason)
	assert.Equal(t, session.LoginRoute, events[0].Redirect)
}

func TestClaimsSomenteParaExibicao(t *testing.T) {
	srv := &authServer{}
	c, _ := newController(t, srv, 0)
	require.NoError(t, c.Login(context.Background(), "op1", "secret1"))

	claims, err := c.Claims()
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "op1", claims.Login)
}
