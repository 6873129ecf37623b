package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/application/service"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

func newOrderService(t *testing.T, handler http.HandlerFunc) (*service.OrderService, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return service.NewOrderService(rest.New(rest.Options{BaseURL: srv.URL})), &calls
}

// pagedOrders serve /order paginado por cursor sobre um conjunto fixo.
func pagedOrders(t *testing.T, total int) http.HandlerFunc {
	t.Helper()
	orders := make([]entity.Order, total)
	for i := range orders {
		orders[i] = entity.Order{Base: entity.Base{ID: i + 1}, OrderNumber: i + 1, Status: entity.StatusQuote}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("PageSize"))
		require.Greater(t, pageSize, 0, "o filtro deve propagar PageSize")

		start := 0
		if cursor := r.URL.Query().Get("Cursor"); cursor != "" {
			// O cursor deste servidor de teste é o índice inicial da página.
			start, _ = strconv.Atoi(cursor)
		}
		end := start + pageSize
		if end > len(orders) {
			end = len(orders)
		}
		out := dto.ListResponse[entity.Order]{PageSize: pageSize, Data: orders[start:end]}
		if end < len(orders) {
			out.Cursor = strconv.Itoa(end)
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginação por cursor
// ──────────────────────────────────────────────────────────────────────────────

func TestListSegueCadeiaDeCursores(t *testing.T) {
	s, calls := newOrderService(t, pagedOrders(t, 5))

	var all []entity.Order
	f := dto.ListFilter{PageSize: 2}
	var sizes []int
	for {
		resp, err := s.List(context.Background(), f)
		require.NoError(t, err)
		sizes = append(sizes, len(resp.Data))
		all = append(all, resp.Data...)
		if resp.Cursor == "" {
			break
		}
		// O cursor é opaco: apenas ecoado na próxima chamada.
		f.Cursor = resp.Cursor
	}

	assert.Equal(t, []int{2, 2, 1}, sizes, "cinco registros com página 2 rendem páginas 2, 2 e 1")
	assert.Equal(t, 3, *calls, "três chamadas, uma por página")
	require.Len(t, all, 5)
	for i, o := range all {
		assert.Equal(t, i+1, o.ID, "a ordem dos registros deve ser preservada entre páginas")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Portão de transição de status
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatusRecusaTransicaoIlegalSemTocarARede(t *testing.T) {
	s, calls := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(entity.Order{
				Base:   entity.Base{ID: 1},
				Status: entity.StatusCompleted,
			})
		default:
			t.Fatalf("transição ilegal não deve emitir %s %s", r.Method, r.URL.Path)
		}
	})

	_, err := s.UpdateStatus(context.Background(), 1, entity.StatusInProgress)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "pedido finalizado é terminal")
	assert.Equal(t, 1, *calls, "apenas o GET de consulta; nenhum PUT deve sair")
}

func TestUpdateStatusAplicaTransicaoValida(t *testing.T) {
	s, _ := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(entity.Order{
				Base:       entity.Base{ID: 1},
				CustomerID: 1,
				AccountID:  1,
				Status:     entity.StatusInProgress,
			})
		case http.MethodPut:
			var in entity.Order
			_ = json.NewDecoder(r.Body).Decode(&in)
			assert.Equal(t, entity.StatusCompleted, in.Status)
			_ = json.NewEncoder(w).Encode(in)
		}
	})

	updated, err := s.UpdateStatus(context.Background(), 1, entity.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
}

func TestChangeStatusAllowedNaoTocaARede(t *testing.T) {
	s, calls := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.True(t, s.ChangeStatusAllowed(entity.StatusQuote, entity.StatusInProgress))
	assert.False(t, s.ChangeStatusAllowed(entity.StatusCompleted, entity.StatusQuote))
	assert.Zero(t, *calls, "a consulta do portão é puramente local")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação local
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRecusaFormularioInvalidoSemTocarARede(t *testing.T) {
	s, calls := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := s.Create(context.Background(), entity.Order{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pedido sem cliente e conta é inválido")
	assert.Zero(t, *calls, "validação local falha antes de qualquer chamada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Endpoints de arquivo
// ──────────────────────────────────────────────────────────────────────────────

func TestExportPropagaPeriodoNaQuery(t *testing.T) {
	var gotStart, gotEnd string
	s, _ := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("StartDate")
		gotEnd = r.URL.Query().Get("EndDate")
		_, _ = w.Write([]byte("%PDF-1.7"))
	})

	data, err := s.Export(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", gotStart)
	assert.Equal(t, "2026-08-31", gotEnd)
	assert.Equal(t, "%PDF", string(data[:4]), "a exportação devolve o PDF bruto")
}

func TestDownloadQuoteUsaARotaDoPedido(t *testing.T) {
	var gotPath string
	s, _ := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("%PDF-1.7"))
	})

	_, err := s.DownloadQuote(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("/order/%d/download", 42), gotPath)
}
