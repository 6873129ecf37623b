package service

import (
	"context"
	"fmt"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/rest"
)

// UserService fachada do recurso /user.
type UserService struct {
	api  *rest.Client
	base string
}

// NewUserService constrói a fachada.
func NewUserService(api *rest.Client) *UserService {
	return &UserService{api: api, base: "/user"}
}

// List lista usuários com paginação por cursor.
func (s *UserService) List(ctx context.Context, f dto.ListFilter) (dto.ListResponse[entity.User], error) {
	return rest.Get[dto.ListResponse[entity.User]](ctx, s.api, withQuery(s.base, f))
}

// Get busca um usuário por id.
func (s *UserService) Get(ctx context.Context, id int) (entity.User, error) {
	return rest.Get[entity.User](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}

// Create valida o formulário (senha obrigatória) e cria o usuário.
func (s *UserService) Create(ctx context.Context, u entity.User) (entity.User, error) {
	if err := u.Validate(true); err != nil {
		return entity.User{}, err
	}
	return rest.Post[entity.User](ctx, s.api, s.base, u)
}

// Update valida o formulário (senha opcional) e atualiza o usuário; ack booleano.
func (s *UserService) Update(ctx context.Context, u entity.User) (bool, error) {
	if err := u.Validate(false); err != nil {
		return false, err
	}
	return rest.Put[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, u.ID), u)
}

// Delete remove o usuário.
func (s *UserService) Delete(ctx context.Context, id int) (bool, error) {
	return rest.Delete[bool](ctx, s.api, fmt.Sprintf("%s/%d", s.base, id))
}
