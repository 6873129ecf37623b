// Package service expõe as fachadas tipadas por recurso REST. Cada fachada
// liga um prefixo de rota a métodos; não há lógica de negócio nem cache entre
// chamadas — toda navegação reconsulta o backend.
package service

import (
	"context"
	"fmt"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// CustomerService fachada do recurso /customer.
type CustomerService struct {
	api  *rest.Client
	base string
}

// NewCustomerService constrói a fachada.
func NewCustomerService(api *rest.Client) *CustomerService {
	return &CustomerService{api: api, base: "/customer"}
}

// List lista clientes com paginação por cursor.
func (s *CustomerService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.Customer], error) {
	return rest.Get[dto.ListResponse[entity.Customer]](ctx, s.api, withQuery(s.base, f))
}

// Get busca um cliente por id.
func (s *CustomerService) Get(ctx context.Context, id int) (entity.Customer, error) {
	return rest.Get[entity.Customer](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create valida o formulário e cria o cliente.
func (s *CustomerService) Create(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	if err := c.Validate(); err != nil {
		return entity.Customer{}, err
	}
	return rest.Post[entity.Customer](ctx, s.api, s.base, c)
}

// Update valida o formulário e atualiza o cliente. O backend responde com um
// ack booleano para este recurso.
func (s *CustomerService) Update(ctx context.Context, c entity.Customer) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	return rest.Put[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, c.ID), c)
}

// Delete remove o cliente.
func (s *CustomerService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// withQuery anexa a query string do filtro ao caminho base.
func withQuery(base string, f dto.ListFilter) string {
	q := f.Query()
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
