package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/application/service"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

func validCustomer() entity.Customer {
	return entity.Customer{
		CorporateName: "Açaí do Vale Alimentos",
		Cnpj:          "98.765.432/0001-10",
		IE:            "987654321",
		Contact:       "João Pereira",
		Phone:         "(12) 99876-5432",
		Email:         "compras@acaidovale.com.br",
	}
}

func newCustomerService(t *testing.T, handler http.HandlerFunc) (*service.CustomerService, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return service.NewCustomerService(rest.New(rest.Options{BaseURL: srv.URL})), &calls
}

func TestCustomerCreateDevolveORecursoCriado(t *testing.T) {
	s, _ := newCustomerService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/customer", r.URL.Path)
		var in entity.Customer
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = 10
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	created, err := s.Create(context.Background(), validCustomer())
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID, "o backend atribui o id")
	assert.Equal(t, "Açaí do Vale Alimentos", created.CorporateName)
}

func TestCustomerCreateValidaAntesDeEnviar(t *testing.T) {
	s, calls := newCustomerService(t, func(w http.ResponseWriter, r *http.Request) {})

	c := validCustomer()
	c.Email = "sem-arroba"
	c.IE = "1234567890" // acima de 9 caracteres

	_, err := s.Create(context.Background(), c)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, *calls)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "email")
	assert.Contains(t, verr.Error(), "ie")
}

func TestCustomerUpdateDevolveConfirmacao(t *testing.T) {
	s, _ := newCustomerService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/customer/10", r.URL.Path)
		_ = json.NewEncoder(w).Encode(true)
	})

	c := validCustomer()
	c.ID = 10
	ok, err := s.Update(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, ok, "a atualização de cliente confirma com booleano")
}

func TestCustomerListPropagaBusca(t *testing.T) {
	var gotSearch string
	s, _ := newCustomerService(t, func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("Search")
		_ = json.NewEncoder(w).Encode(dto.ListResponse[entity.Customer]{Data: []entity.Customer{}})
	})

	_, err := s.List(context.Background(), dto.ListFilter{Search: "gráfica"})
	require.NoError(t, err)
	assert.Equal(t, "gráfica", gotSearch)
}

func TestCustomerDelete(t *testing.T) {
	s, _ := newCustomerService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/customer/10", r.URL.Path)
		_ = json.NewEncoder(w).Encode(true)
	})

	ok, err := s.Delete(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, ok)
}
