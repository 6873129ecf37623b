package entity

import (
	"time"

	"github.com/kaiiquetome/GraphixWeb/internal/domain"
)

// OrderStatus status do pedido no fluxo comercial.
type OrderStatus int

const (
	StatusQuote      OrderStatus = iota // Orçamento
	StatusInProgress                    // Em execução
	StatusCompleted                     // Finalizado
	StatusRefused                       // Recusado
)

// String devolve o rótulo de exibição do status.
func (s OrderStatus) String() string {
	switch s {
	case StatusQuote:
		return "Orçamento"
	case StatusInProgress:
		return "Em Execução"
	case StatusCompleted:
		return "Finalizado"
	case StatusRefused:
		return "Recusado"
	default:
		return "Desconhecido"
	}
}

// Valid informa se o valor corresponde a um status conhecido.
func (s OrderStatus) Valid() bool {
	return s >= StatusQuote && s <= StatusRefused
}

// Order pedido de venda. Total é calculado no cliente apenas para exibição;
// o backend sempre recalcula e é a autoridade sobre o valor.
type Order struct {
	Base
	CustomerID       int         `json:"customerId"`
	AccountID        int         `json:"accountId"`
	Status           OrderStatus `json:"status"`
	OrderNumber      int         `json:"orderNumber"`
	Total            float64     `json:"total"`
	Discount         float64     `json:"discount"`
	Observation      string      `json:"observation,omitempty"`
	PaymentCondition string      `json:"paymentCondition,omitempty"`
	Seller           string      `json:"seller,omitempty"`
	Freight          float64     `json:"freight"`
	FOB              bool        `json:"fob"`
	DeliveryDeadline *time.Time  `json:"deliveryDeadline,omitempty"`
	DeliveryDate     *time.Time  `json:"deliveryDate,omitempty"`
	Items            []OrderItem `json:"items,omitempty"`
	Account          *Account    `json:"account,omitempty"`
	Customer         *Customer   `json:"customer,omitempty"`
}

// Validate aplica as regras mínimas do formulário de pedido.
func (o Order) Validate() error {
	v := domain.NewValidationError()
	if o.CustomerID <= 0 {
		v.Add("customerId", "Cliente é obrigatório")
	}
	if o.AccountID <= 0 {
		v.Add("accountId", "Conta é obrigatória")
	}
	if !o.Status.Valid() {
		v.Add("status", "status desconhecido")
	}
	for _, item := range o.Items {
		if item.ProductID <= 0 {
			v.Add("items", "item sem produto")
			break
		}
		if item.Quantity <= 0 {
			v.Add("items", "item com quantidade inválida")
			break
		}
	}
	return v.OrNil()
}

// OrderItem item do pedido. Total é o valor unitário do produto.
type OrderItem struct {
	Base
	OrderID   int      `json:"orderId,omitempty"`
	ProductID int      `json:"productId"`
	Quantity  int      `json:"quantity"`
	Total     float64  `json:"total"`
	Product   *Product `json:"product,omitempty"`
}
