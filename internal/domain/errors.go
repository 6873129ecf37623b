package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrUnauthorized      = errors.New("não autorizado")
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("mudança de status não permitida")
)

// RemoteError resposta não-2xx (exceto 401) do backend. Quando o corpo traz o
// formato estruturado {error, detail}, Err e Detail são preenchidos; caso
// contrário Raw guarda o corpo bruto para diagnóstico.
type RemoteError struct {
	StatusCode int
	Err        string // campo "error" do corpo
	Detail     string // campo "detail" do corpo
	Raw        string // corpo bruto quando o JSON não parseia
}

func (e *RemoteError) Error() string {
	if e.Err != "" {
		return fmt.Sprintf("api: %s: %s", e.Err, e.Detail)
	}
	return fmt.Sprintf("api: a requisição falhou, entre em contato com o suporte técnico (status %d): %s", e.StatusCode, e.Raw)
}

// TransportError falha de rede ou timeout antes de qualquer resposta HTTP.
type TransportError struct {
	Inner error
}

func (e *TransportError) Error() string {
	return "não foi possível conectar ao servidor: " + e.Inner.Error()
}

func (e *TransportError) Unwrap() error { return e.Inner }

// ValidationError falha de validação de formulário, detectada antes de
// qualquer chamada de rede. errors.Is(err, ErrInvalidInput) é verdadeiro.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError cria um acumulador de erros de campo.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra a mensagem de um campo inválido.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

// OrNil devolve nil quando nenhum campo foi registrado.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validação: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
