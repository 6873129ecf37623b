package entity

import (
	"time"

	"github.com/kaiiquetome/GraphixWeb/internal/domain"
)

// CashFlowType natureza do lançamento no fluxo de caixa.
type CashFlowType int

const (
	CashFlowInput  CashFlowType = iota // Entrada
	CashFlowOutput                     // Saída
)

// String devolve o rótulo de exibição do tipo.
func (t CashFlowType) String() string {
	switch t {
	case CashFlowInput:
		return "Entrada"
	case CashFlowOutput:
		return "Saída"
	default:
		return "Desconhecido"
	}
}

// CashFlowCategory categoria do lançamento.
type CashFlowCategory int

const (
	CategorySales     CashFlowCategory = iota // Vendas
	CategoryServices                          // Serviços
	CategoryRent                              // Aluguel
	CategorySalaries                          // Salários
	CategoryMarketing                         // Marketing
	CategoryOthers                            // Outros
)

// String devolve o rótulo de exibição da categoria.
func (c CashFlowCategory) String() string {
	switch c {
	case CategorySales:
		return "Vendas"
	case CategoryServices:
		return "Serviços"
	case CategoryRent:
		return "Aluguel"
	case CategorySalaries:
		return "Salários"
	case CategoryMarketing:
		return "Marketing"
	case CategoryOthers:
		return "Outros"
	default:
		return "Desconhecido"
	}
}

// CashFlow lançamento (previsto ou realizado) do fluxo de caixa. Lançamentos
// ligados a um pedido carregam OrderID e o número da parcela.
type CashFlow struct {
	Base
	OrderID              *int             `json:"orderId,omitempty"`
	InstallmentNumber    *int             `json:"installmentNumber,omitempty"`
	Description          string           `json:"description,omitempty"`
	Type                 CashFlowType     `json:"type"`
	Category             CashFlowCategory `json:"category"`
	ExpectedDateReceive  *time.Time       `json:"expectedDateReceive,omitempty"`
	ExpectedValueReceive float64          `json:"expectedValueReceive"`
	ValueReceive         *float64         `json:"valueReceive,omitempty"`
	DateReceive          *time.Time       `json:"dateReceive,omitempty"`
}

// Realized informa se o lançamento já foi efetivado (data de recebimento presente).
func (c CashFlow) Realized() bool { return c.DateReceive != nil }

// Validate aplica as regras mínimas do formulário de lançamento.
func (c CashFlow) Validate() error {
	v := domain.NewValidationError()
	if c.Type != CashFlowInput && c.Type != CashFlowOutput {
		v.Add("type", "tipo desconhecido")
	}
	if c.Category < CategorySales || c.Category > CategoryOthers {
		v.Add("category", "categoria desconhecida")
	}
	if c.ExpectedValueReceive < 0 {
		v.Add("expectedValueReceive", "valor previsto não pode ser negativo")
	}
	return v.OrNil()
}
