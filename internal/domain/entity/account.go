package entity

import (
	"net/mail"
	"strings"

	"github.com/kaiiquetome/GraphixWeb/internal/domain"
)

// Account conta emissora (a própria gráfica) usada nos pedidos.
type Account struct {
	Base
	CorporateName string `json:"corporateName,omitempty"`
	Cnpj          string `json:"cnpj,omitempty"`
	IE            string `json:"ie,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Validate aplica as regras de campo obrigatório do formulário de conta.
func (a Account) Validate() error {
	v := domain.NewValidationError()
	if strings.TrimSpace(a.CorporateName) == "" {
		v.Add("corporateName", "Razão Social é obrigatória")
	}
	if strings.TrimSpace(a.Cnpj) == "" {
		v.Add("cnpj", "CNPJ é obrigatório")
	}
	if strings.TrimSpace(a.IE) == "" {
		v.Add("ie", "Inscrição Estadual é obrigatória")
	} else if len(a.IE) > 9 {
		v.Add("ie", "a Inscrição Estadual não pode exceder 9 caracteres")
	}
	if strings.TrimSpace(a.Phone) == "" {
		v.Add("phone", "Telefone é obrigatório")
	}
	if strings.TrimSpace(a.Email) == "" {
		v.Add("email", "Email é obrigatório")
	} else if _, err := mail.ParseAddress(a.Email); err != nil {
		v.Add("email", "Email inválido")
	}
	return v.OrNil()
}
