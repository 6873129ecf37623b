package entity

import (
	"strings"

	"github.com/kaiiquetome/GraphixWeb/internal/domain"
)

// UserProfile perfil de acesso do usuário.
type UserProfile int

const (
	ProfileAdministrator UserProfile = iota // Administrador
	ProfileOperator                         // Operador
)

// String devolve o rótulo de exibição do perfil.
func (p UserProfile) String() string {
	switch p {
	case ProfileAdministrator:
		return "Administrador"
	case ProfileOperator:
		return "Operador"
	default:
		return "Desconhecido"
	}
}

// Role devolve o nome da role correspondente ao perfil, como emitida no token.
func (p UserProfile) Role() string {
	switch p {
	case ProfileAdministrator:
		return "Administrator"
	default:
		return "Operator"
	}
}

// User usuário do sistema.
type User struct {
	Base
	Name     string      `json:"name,omitempty"`
	Login    string      `json:"login,omitempty"`
	Password string      `json:"password,omitempty"` // somente escrita; o backend nunca devolve
	Profile  UserProfile `json:"profile"`
}

// Validate aplica as regras de campo obrigatório do formulário de usuário.
// requirePassword distingue criação (senha obrigatória) de edição.
func (u User) Validate(requirePassword bool) error {
	v := domain.NewValidationError()
	if strings.TrimSpace(u.Name) == "" {
		v.Add("name", "Nome é obrigatório")
	}
	if strings.TrimSpace(u.Login) == "" {
		v.Add("login", "Login é obrigatório")
	}
	if requirePassword || u.Password != "" {
		if n := len(u.Password); n < 4 || n > 10 {
			v.Add("password", "a senha deve ter entre 4 e 10 caracteres")
		}
	}
	return v.OrNil()
}
