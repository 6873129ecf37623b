// Package session implementa o ciclo de vida da sessão: máquina de estados
// Anônimo → Autenticado → Renovando, refresh proativo com janela fixa local e
// difusão de eventos de mudança de sessão para a camada de UI.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/storage"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
	"github.com/kaiiquetome/GraphixWeb/pkg/token"
)

// State estado corrente da sessão.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
	StateRefreshing
)

// String devolve o nome do estado.
func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateRefreshing:
		return "refreshing"
	default:
		return "anonymous"
	}
}

// LoginRoute rota de destino quando a sessão é derrubada.
const LoginRoute = "/login"

// Event notificação de mudança de sessão. A difusão é fan-out sem replay:
// assinantes tardios não recebem transições passadas.
type Event struct {
	State    State
	Reason   string // login, refresh, logout, unauthorized, restore
	Redirect string // LoginRoute quando a sessão cai; vazio caso contrário
}

// DefaultRefreshTTL janela local padrão antes do refresh proativo. Fixa e
// independente da expiração declarada no próprio token.
const DefaultRefreshTTL = 15 * time.Minute

// Controller controlador do ciclo de vida da sessão. Implementa
// rest.CredentialSource para o transporte compartilhado.
type Controller struct {
	store *storage.TokenStore
	api   *rest.Client // transporte anônimo para /auth
	ttl   time.Duration
	log   *logger.Logger
	now   func() time.Time

	mu           sync.Mutex
	state        State
	accessToken  string
	refreshToken string
	expiry       time.Time
	roles        []string
	user         *dto.UserInfo
	observers    []func(Event)

	refreshGroup singleflight.Group
}

var _ rest.CredentialSource = (*Controller)(nil)

// NewController constrói o controlador. api deve ser um cliente SEM fonte de
// credenciais (as rotas /auth são públicas). ttl zero usa DefaultRefreshTTL.
func NewController(store *storage.TokenStore, api *rest.Client, ttl time.Duration, log *logger.Logger) *Controller {
	if ttl == 0 {
		ttl = DefaultRefreshTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		store: store,
		api:   api,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
		state: StateAnonymous,
	}
}

// Subscribe registra um observador de mudanças de sessão. Sem replay.
func (c *Controller) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Restore tenta restaurar a sessão persistida no início da aplicação.
// Devolve true se havia sessão gravada.
func (c *Controller) Restore(ctx context.Context) bool {
	tok, ok := c.store.Get(storage.KeyAuthToken)
	if !ok || tok == "" {
		return false
	}
	refresh, _ := c.store.Get(storage.KeyRefreshToken)

	var expiry time.Time
	if raw, ok := c.store.Get(storage.KeyTimestemp); ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			expiry = t
		}
	}
	var roles []string
	if raw, ok := c.store.Get(storage.KeyRoles); ok {
		_ = json.Unmarshal([]byte(raw), &roles)
	}
	var user *dto.UserInfo
	if raw, ok := c.store.Get(storage.KeyUser); ok {
		u := dto.UserInfo{}
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			user = &u
		}
	}

	c.mu.Lock()
	c.accessToken = tok
	c.refreshToken = refresh
	c.expiry = expiry
	c.roles = roles
	c.user = user
	c.state = StateAuthenticated
	c.mu.Unlock()

	c.log.Debug().Msg("sessão restaurada do armazenamento")
	c.notify(Event{State: StateAuthenticated, Reason: "restore"})
	return true
}

// Login autentica com usuário e senha e, em caso de sucesso, persiste a
// sessão e notifica os observadores exatamente uma vez.
func (c *Controller) Login(ctx context.Context, userName, password string) error {
	resp, err := rest.Post[dto.AuthResponse](ctx, c.api, "/auth/login", dto.LoginRequest{
		UserName: userName,
		Password: password,
	})
	if err != nil {
		c.log.Warn().Str("user", userName).Err(err).Msg("falha de autenticação")
		return err
	}
	if err := c.adopt(resp); err != nil {
		return err
	}
	c.log.Info().Str("user", userName).Msg("sessão iniciada")
	c.notify(Event{State: StateAuthenticated, Reason: "login"})
	return nil
}

// Logout encerra a sessão explicitamente: limpa o armazenamento e notifica
// com redirecionamento para a tela de login.
func (c *Controller) Logout(ctx context.Context) {
	c.drop("logout")
}

// HandleUnauthorized reação a um 401 vindo do transporte: logout forçado.
func (c *Controller) HandleUnauthorized(ctx context.Context) {
	c.drop("unauthorized")
}

// Token devolve o access token corrente, renovando-o antes quando a janela
// local de expiração já passou. Devolve vazio quando não há sessão (o
// transporte então omite o header Authorization).
func (c *Controller) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	tok := c.accessToken
	expiry := c.expiry
	c.mu.Unlock()

	if tok == "" {
		return "", nil
	}
	if !expiry.IsZero() && c.now().After(expiry) {
		if err := c.refresh(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		tok = c.accessToken
		c.mu.Unlock()
	}
	return tok, nil
}

// IsAuthenticated consulta pura: verdadeiro se há token presente E os claims
// de identidade são decodificáveis. A decodificação não valida assinatura —
// serve apenas à UI.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	tok := c.accessToken
	c.mu.Unlock()
	if tok == "" {
		return false
	}
	_, err := token.DecodeUnverified(tok)
	return err == nil
}

// Claims devolve os claims decodificados do token, somente para exibição.
func (c *Controller) Claims() (*token.Claims, error) {
	c.mu.Lock()
	tok := c.accessToken
	c.mu.Unlock()
	if tok == "" {
		return nil, domain.ErrUnauthorized
	}
	return token.DecodeUnverified(tok)
}

// Roles devolve as roles recebidas no login (cópia).
func (c *Controller) Roles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.roles))
	copy(out, c.roles)
	return out
}

// User devolve a identidade resumida da sessão, se houver.
func (c *Controller) User() *dto.UserInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// State devolve o estado corrente.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// refresh renova o par de tokens. Chamadas concorrentes perto da expiração
// colapsam em um único refresh em voo (singleflight); falha derruba a sessão.
func (c *Controller) refresh(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		c.mu.Lock()
		cur := c.accessToken
		refresh := c.refreshToken
		c.state = StateRefreshing
		c.mu.Unlock()

		resp, err := rest.Post[dto.AuthResponse](ctx, c.api, "/auth/refresh-token", dto.RefreshRequest{
			JwtToken:     cur,
			RefreshToken: refresh,
		})
		if err != nil {
			c.log.Warn().Err(err).Msg("refresh de token falhou")
			c.drop("unauthorized")
			return nil, domain.ErrUnauthorized
		}
		if err := c.adopt(resp); err != nil {
			return nil, err
		}
		c.log.Debug().Msg("token renovado")
		c.notify(Event{State: StateAuthenticated, Reason: "refresh"})
		return nil, nil
	})
	return err
}

// adopt persiste a resposta de autenticação (login ou refresh) e atualiza o
// cache em memória. A expiração local é now + ttl, independente do claim exp.
func (c *Controller) adopt(resp dto.AuthResponse) error {
	expiry := c.now().Add(c.ttl)

	rolesJSON, _ := json.Marshal(resp.Roles)
	userJSON, _ := json.Marshal(resp.User)
	if err := c.store.Set(storage.KeyAuthToken, resp.JwtToken); err != nil {
		return err
	}
	if err := c.store.Set(storage.KeyRefreshToken, resp.RefreshToken); err != nil {
		return err
	}
	if err := c.store.Set(storage.KeyRoles, string(rolesJSON)); err != nil {
		return err
	}
	if err := c.store.Set(storage.KeyTimestemp, expiry.Format(time.RFC3339)); err != nil {
		return err
	}
	if err := c.store.Set(storage.KeyUser, string(userJSON)); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = resp.JwtToken
	c.refreshToken = resp.RefreshToken
	c.expiry = expiry
	c.roles = resp.Roles
	c.user = &resp.User
	c.state = StateAuthenticated
	c.mu.Unlock()
	return nil
}

// drop logout forçado: limpa todas as chaves persistidas, zera o cache e
// notifica com redirecionamento para /login.
func (c *Controller) drop(reason string) {
	if err := c.store.Clear(); err != nil {
		c.log.Error().Err(err).Msg("falha ao limpar armazenamento de sessão")
	}

	c.mu.Lock()
	c.accessToken = ""
	c.refreshToken = ""
	c.expiry = time.Time{}
	c.roles = nil
	c.user = nil
	c.state = StateAnonymous
	c.mu.Unlock()

	c.log.Info().Str("reason", reason).Msg("sessão encerrada")
	c.notify(Event{State: StateAnonymous, Reason: reason, Redirect: LoginRoute})
}

// notify difunde o evento fora do lock, na ordem de inscrição.
func (c *Controller) notify(ev Event) {
	c.mu.Lock()
	observers := make([]func(Event), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()
	for _, fn := range observers {
		fn(ev)
	}
}

// SetClock troca a fonte de tempo (testes).
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
