package service

import (
	"context"
	"fmt"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// ProductService fachada do recurso /product.
type ProductService struct {
	api  *rest.Client
	base string
}

// NewProductService constrói a fachada.
func NewProductService(api *rest.Client) *ProductService {
	return &ProductService{api: api, base: "/product"}
}

// List lista produtos com paginação por cursor.
func (s *ProductService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.Product], error) {
	return rest.Get[dto.ListResponse[entity.Product]](ctx, s.api, withQuery(s.base, f))
}

// Get busca um produto por id.
func (s *ProductService) Get(ctx context.Context, id int) (entity.Product, error) {
	return rest.Get[entity.Product](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create cria o produto. Todos os campos do formulário são opcionais.
func (s *ProductService) Create(ctx context.Context, p entity.Product) (entity.Product, error) {
	return rest.Post[entity.Product](ctx, s.api, s.base, p)
}

// Update atualiza o produto; ack booleano.
func (s *ProductService) Update(ctx context.Context, p entity.Product) (bool, error) {
	return rest.Put[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, p.ID), p)
}

// Delete remove o produto.
func (s *ProductService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}
