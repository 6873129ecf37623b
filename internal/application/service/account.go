package service

import (
	"context"
	"fmt"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// AccountService fachada do recurso /account.
type AccountService struct {
	api  *rest.Client
	base string
}

// NewAccountService constrói a fachada.
func NewAccountService(api *rest.Client) *AccountService {
	return &AccountService{api: api, base: "/account"}
}

// List lista contas com paginação por cursor.
func (s *AccountService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.Account], error) {
	return rest.Get[dto.ListResponse[entity.Account]](ctx, s.api, withQuery(s.base, f))
}

// Get busca uma conta por id.
func (s *AccountService) Get(ctx context.Context, id int) (entity.Account, error) {
	return rest.Get[entity.Account](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create valida o formulário e cria a conta.
func (s *AccountService) Create(ctx context.Context, a entity.Account) (entity.Account, error) {
	if err := a.Validate(); err != nil {
		return entity.Account{}, err
	}
	return rest.Post[entity.Account](ctx, s.api, s.base, a)
}

// Update valida o formulário e atualiza a conta; ack booleano.
func (s *AccountService) Update(ctx context.Context, a entity.Account) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	return rest.Put[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, a.ID), a)
}

// Delete remove a conta.
func (s *AccountService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}
