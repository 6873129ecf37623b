package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/order"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// OrderService fachada do recurso /order, incluindo os endpoints de arquivo
// (orçamento, ordem de serviço e exportação em PDF).
type OrderService struct {
	api  *rest.Client
	base string
}

// NewOrderService constrói a fachada.
func NewOrderService(api *rest.Client) *OrderService {
	return &OrderService{api: api, base: "/order"}
}

// List lista pedidos com paginação por cursor e filtros de status/cliente/período.
func (s *OrderService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.Order], error) {
	return rest.Get[dto.ListResponse[entity.Order]](ctx, s.api, withQuery(s.base, f))
}

// Get busca um pedido por id, com itens e relacionamentos.
func (s *OrderService) Get(ctx context.Context, id int) (entity.Order, error) {
	return rest.Get[entity.Order](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create valida o formulário e cria o pedido. O backend devolve o recurso
// criado com o total recalculado.
func (s *OrderService) Create(ctx context.Context, o entity.Order) (entity.Order, error) {
	if err := o.Validate(); err != nil {
		return entity.Order{}, err
	}
	return rest.Post[entity.Order](ctx, s.api, s.base, o)
}

// Update valida o formulário e atualiza o pedido, devolvendo o recurso
// atualizado.
func (s *OrderService) Update(ctx context.Context, o entity.Order) (entity.Order, error) {
	if err := o.Validate(); err != nil {
		return entity.Order{}, err
	}
	return rest.Put[entity.Order](ctx, s.api, fmt.Sprintf("%s/%d", s.base, o.ID), o)
}

// Delete remove o pedido.
func (s *OrderService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// UpdateStatus muda o status do pedido aplicando antes o portão do fluxo:
// transições ilegais são recusadas sem emitir nenhuma chamada de rede.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, to entity.OrderStatus) (entity.Order, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return entity.Order{}, err
	}
	if !order.CanTransition(cur.Status, to) {
		return entity.Order{}, fmt.Errorf("%s → %s: %w", cur.Status, to, domain.ErrInvalidTransition)
	}
	cur.Status = to
	return s.Update(ctx, cur)
}

// ChangeStatusAllowed consulta o portão do fluxo sem tocar a rede.
func (s *OrderService) ChangeStatusAllowed(from, to entity.OrderStatus) bool {
	return order.CanTransition(from, to)
}

// DownloadQuote gera o orçamento do pedido em PDF.
func (s *OrderService) DownloadQuote(ctx context.Context, id int) ([]byte, error) {
	return rest.Download(ctx, s.api, fmt.Sprintf("%s/%d/download", s.base, id))
}

// DownloadProductionOrder gera a ordem de serviço do pedido em PDF.
func (s *OrderService) DownloadProductionOrder(ctx context.Context, id int) ([]byte, error) {
	return rest.Download(ctx, s.api, fmt.Sprintf("%s/%d/ordem-servico", s.base, id))
}

// Export exporta os pedidos do período em PDF.
func (s *OrderService) Export(ctx context.Context, startDate, endDate string) ([]byte, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("StartDate", startDate)
	}
	if endDate != "" {
		q.Set("EndDate", endDate)
	}
	path := s.base + "/export"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return rest.Download(ctx, s.api, path)
}
