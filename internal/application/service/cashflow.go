package service

import (
	"context"
	"fmt"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// CashFlowService fachada do recurso /cashFlow.
type CashFlowService struct {
	api  *rest.Client
	base string
}

// NewCashFlowService constrói a fachada.
func NewCashFlowService(api *rest.Client) *CashFlowService {
	return &CashFlowService{api: api, base: "/cashFlow"}
}

// List lista lançamentos com paginação por cursor e filtro de período.
func (s *CashFlowService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.CashFlow], error) {
	return rest.Get[dto.ListResponse[entity.CashFlow]](ctx, s.api, withQuery(s.base, f))
}

// Get busca um lançamento por id.
func (s *CashFlowService) Get(ctx context.Context, id int) (entity.CashFlow, error) {
	return rest.Get[entity.CashFlow](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create valida o formulário e cria o lançamento.
func (s *CashFlowService) Create(ctx context.Context, c entity.CashFlow) (entity.CashFlow, error) {
	if err := c.Validate(); err != nil {
		return entity.CashFlow{}, err
	}
	return rest.Post[entity.CashFlow](ctx, s.api, s.base, c)
}

// Update valida o formulário e atualiza o lançamento.
func (s *CashFlowService) Update(ctx context.Context, c entity.CashFlow) (entity.CashFlow, error) {
	if err := c.Validate(); err != nil {
		return entity.CashFlow{}, err
	}
	return rest.Put[entity.CashFlow](ctx, s.api, fmt.Sprintf("%s/%d", s.base, c.ID), c)
}

// Delete remove o lançamento.
func (s *CashFlowService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}
