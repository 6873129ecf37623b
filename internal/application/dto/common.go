// Package dto define os envelopes de protocolo trocados com o backend:
// listagem paginada por cursor, filtros de consulta, autenticação e corpo de
// erro estruturado.
package dto

import (
	"net/url"
	"strconv"
)

// DefaultPageSize tamanho de página aplicado quando o filtro não informa um.
const DefaultPageSize = 20

// ListResponse envelope de listagem paginada por cursor. Cursor vazio na
// resposta indica a última página.
type ListResponse[T any] struct {
	Cursor   string `json:"cursor,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
	Data     []T    `json:"data"`
}

// ListFilter parâmetros aceitos pelos endpoints de listagem. Cursor é um
// token opaco emitido pelo servidor e deve ser ecoado sem interpretação.
type ListFilter struct {
	PageSize   int
	Cursor     string
	StartDate  string // formato yyyy-MM-dd
	EndDate    string // formato yyyy-MM-dd
	Status     *int
	CustomerID int
	Search     string
}

// Query serializa o filtro como query string, omitindo campos vazios.
func (f ListFilter) Query() url.Values {
	q := url.Values{}
	if f.PageSize > 0 {
		q.Set("PageSize", strconv.Itoa(f.PageSize))
	}
	if f.Cursor != "" {
		q.Set("Cursor", f.Cursor)
	}
	if f.StartDate != "" {
		q.Set("StartDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("EndDate", f.EndDate)
	}
	if f.Status != nil {
		q.Set("Status", strconv.Itoa(*f.Status))
	}
	if f.CustomerID > 0 {
		q.Set("CustomerId", strconv.Itoa(f.CustomerID))
	}
	if f.Search != "" {
		q.Set("Search", f.Search)
	}
	return q
}

// ErrorBody corpo de erro estruturado devolvido pelo backend.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
