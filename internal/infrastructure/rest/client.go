// Package rest implementa o transporte HTTP autenticado compartilhado por
// todos os front ends. Existe exatamente uma implementação deste contrato:
// anexo de bearer token, refresh cooperativo antes do envio, (de)serialização
// JSON uniforme, decodificação do corpo de erro estruturado e logout forçado
// em 401.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
)

// defaultTimeout timeout fixo por chamada quando a configuração não define outro.
const defaultTimeout = 10 * time.Second

// CredentialSource fornece o bearer token da sessão corrente e reage a 401.
//
// Token deve executar o refresh proativo quando o relógio local indicar
// expiração e devolver string vazia quando não há sessão (o header é omitido).
// HandleUnauthorized executa o logout forçado: limpa o armazenamento e
// notifica os observadores para redirecionar a `/login`.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
	HandleUnauthorized(ctx context.Context)
}

// Client cliente HTTP do backend GraphixWeb.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   CredentialSource
	log     *logger.Logger
}

// Options parâmetros de construção do Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration     // zero = defaultTimeout
	Credentials CredentialSource  // nil = chamadas anônimas (login/refresh)
	Logger      *logger.Logger    // nil = logger descartável
	HTTPClient  *http.Client      // injetável em testes
}

// New constrói o cliente.
func New(opts Options) *Client {
	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		httpc:   httpc,
		creds:   opts.Credentials,
		log:     log,
	}
}

// WithCredentials devolve uma cópia do cliente ligada à fonte de credenciais.
// Permite que o controlador de sessão use o mesmo transporte de forma anônima
// para /auth/login e /auth/refresh-token.
func (c *Client) WithCredentials(src CredentialSource) *Client {
	clone := *c
	clone.creds = src
	return &clone
}

// Get executa GET e decodifica a resposta JSON em T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

// Post executa POST com corpo JSON e decodifica a resposta em T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body)
}

// Put executa PUT com corpo JSON e decodifica a resposta em T.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, body)
}

// Delete executa DELETE e decodifica a resposta em T.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, nil)
}

// Download executa GET e devolve o payload binário sem tentar decodificar
// JSON. O desvio é pelo tipo de resultado declarado pelo chamador, não pelo
// Content-Type da resposta.
func Download(ctx context.Context, c *Client, path string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Inner: err}
	}
	return data, nil
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return out, nil
	}
	// encoding/json casa campos camelCase sem diferenciar maiúsculas.
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, &domain.TransportError{Inner: err}
	}
	return out, nil
}

// send monta e executa uma requisição autenticada. Devolve a resposta apenas
// em 2xx; qualquer outro status é convertido para o erro correspondente.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var token string
	if c.creds != nil {
		// Refresh cooperativo: Token bloqueia enquanto renova um token
		// expirado pelo relógio local. Falha de refresh já derruba a sessão.
		t, err := c.creds.Token(ctx)
		if err != nil {
			return nil, err
		}
		token = t
	}

	var reader io.Reader
	if body != nil {
		// Campos opcionais não preenchidos ficam ausentes no JSON (omitempty
		// nos DTOs); nunca emitimos null explícito em escrita.
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.TransportError{Inner: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &domain.TransportError{Inner: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method == http.MethodPost || method == http.MethodPut {
		// Chave de idempotência por mutação: cliques repetidos geram chamadas
		// detectáveis como duplicadas pelo servidor.
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Str("method", method).Str("path", path).Err(err).Msg("falha de transporte")
		return nil, &domain.TransportError{Inner: err}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("requisição api")

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if c.creds != nil {
			c.creds.HandleUnauthorized(ctx)
		}
		// Chamadores não devem repetir: a sessão já foi derrubada.
		return nil, domain.ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	return resp, nil
}

// decodeError tenta o corpo estruturado {error, detail}; se o parse falhar,
// sintetiza um erro genérico com o status HTTP e o corpo bruto.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	var body dto.ErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return &domain.RemoteError{
			StatusCode: resp.StatusCode,
			Err:        body.Error,
			Detail:     body.Detail,
		}
	}
	return &domain.RemoteError{
		StatusCode: resp.StatusCode,
		Raw:        string(raw),
	}
}

// IsUnauthorized informa se o erro representa sessão inválida (401).
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
