package entity

import (
	"net/mail"
	"strings"

	"github.com/kaiiquetome/GraphixWeb/internal/domain"
)

// Customer cliente da gráfica.
type Customer struct {
	Base
	CorporateName string `json:"corporateName,omitempty"`
	Cnpj          string `json:"cnpj,omitempty"`
	IE            string `json:"ie,omitempty"`
	Contact       string `json:"contact,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Validate aplica as regras de campo obrigatório do formulário de cliente.
func (c Customer) Validate() error {
	v := domain.NewValidationError()
	if strings.TrimSpace(c.CorporateName) == "" {
		v.Add("corporateName", "Razão Social é obrigatória")
	}
	if strings.TrimSpace(c.Cnpj) == "" {
		v.Add("cnpj", "CNPJ é obrigatório")
	}
	if strings.TrimSpace(c.IE) == "" {
		v.Add("ie", "Inscrição Estadual é obrigatória")
	} else if len(c.IE) > 9 {
		v.Add("ie", "a Inscrição Estadual não pode exceder 9 caracteres")
	}
	if strings.TrimSpace(c.Contact) == "" {
		v.Add("contact", "Contato é obrigatório")
	}
	if strings.TrimSpace(c.Phone) == "" {
		v.Add("phone", "Telefone é obrigatório")
	}
	if strings.TrimSpace(c.Email) == "" {
		v.Add("email", "Email é obrigatório")
	} else if _, err := mail.ParseAddress(c.Email); err != nil {
		v.Add("email", "Email inválido")
	}
	return v.OrNil()
}
