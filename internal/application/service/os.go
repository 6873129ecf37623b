package service

import (
	"context"
	"fmt"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// OSService fachada do recurso /OrderService (ordens de serviço/fichas de
// produção). A grafia do caminho segue o backend.
type OSService struct {
	api  *rest.Client
	base string
}

// NewOSService constrói a fachada.
func NewOSService(api *rest.Client) *OSService {
	return &OSService{api: api, base: "/OrderService"}
}

// List lista ordens de serviço com paginação por cursor.
func (s *OSService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.OS], error) {
	return rest.Get[dto.ListResponse[entity.OS]](ctx, s.api, withQuery(s.base, f))
}

// Get busca uma ordem de serviço por id, com subcoleções.
func (s *OSService) Get(ctx context.Context, id int) (entity.OS, error) {
	return rest.Get[entity.OS](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create valida o formulário e cria a ordem de serviço.
func (s *OSService) Create(ctx context.Context, o entity.OS) (entity.OS, error) {
	if err := o.Validate(); err != nil {
		return entity.OS{}, err
	}
	return rest.Post[entity.OS](ctx, s.api, s.base, o)
}

// Update valida e atualiza a ordem de serviço. As subcoleções vão por inteiro
// em cada update: o conjunto enviado substitui o anterior.
func (s *OSService) Update(ctx context.Context, o entity.OS) (entity.OS, error) {
	if err := o.Validate(); err != nil {
		return entity.OS{}, err
	}
	return rest.Put[entity.OS](ctx, s.api, fmt.Sprintf("%s/%d", s.base, o.ID), o)
}

// Delete remove a ordem de serviço.
func (s *OSService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}
