package entity

import (
	"time"

	"github.com/kaiiquetome/GraphixWeb/internal/domain"
)

// OSStatus status da ordem de serviço na produção.
type OSStatus int

const (
	OSPending   OSStatus = iota // Pendente
	OSRunning                   // Em Execução
	OSCompleted                 // Finalizado
)

// String devolve o rótulo de exibição do status.
func (s OSStatus) String() string {
	switch s {
	case OSPending:
		return "Pendente"
	case OSRunning:
		return "Em Execução"
	case OSCompleted:
		return "Finalizado"
	default:
		return "Desconhecido"
	}
}

// OS ordem de serviço (ficha de produção) vinculada 1:1 a um pedido.
// As subcoleções são listas editadas por inteiro: cada update substitui o
// conjunto anterior, não há PATCH parcial de item.
type OS struct {
	Base
	OrderID             int            `json:"orderId"`
	CustomerID          int            `json:"customerId"`
	Observation         string         `json:"observation,omitempty"`
	DeliveryDeadline    *time.Time     `json:"deliveryDeadline,omitempty"`
	Quantity            string         `json:"quantity,omitempty"`
	RollQuantityKg      string         `json:"rollQuantityKg,omitempty"`
	RollQuantityMeters  string         `json:"rollQuantityMeters,omitempty"`
	ProductionStartDate *time.Time     `json:"productionStartDate,omitempty"`
	ProductionEndDate   *time.Time     `json:"productionEndDate,omitempty"`
	Operator            string         `json:"operator,omitempty"`
	Status              OSStatus       `json:"status"`
	LabelOrientation    int            `json:"labelOrientation"`
	Machine             *MachineSetup  `json:"machine,omitempty"`
	InkMixes            []InkMix       `json:"inkMixs,omitempty"`
	Rewindings          []Rewinding    `json:"rewindings,omitempty"`
	Traceabilities      []Traceability `json:"traceabilitys,omitempty"`
	Aniloxes            []Anilox       `json:"aniloxs,omitempty"`
	Order               *Order         `json:"order,omitempty"`
	Customer            *Customer      `json:"customer,omitempty"`
}

// Validate aplica as regras mínimas do formulário de ordem de serviço.
func (o OS) Validate() error {
	v := domain.NewValidationError()
	if o.OrderID <= 0 {
		v.Add("orderId", "Pedido é obrigatório")
	}
	if o.CustomerID <= 0 {
		v.Add("customerId", "Cliente é obrigatório")
	}
	if o.Status < OSPending || o.Status > OSCompleted {
		v.Add("status", "status desconhecido")
	}
	return v.OrNil()
}

// MachineSetup acerto de máquina registrado na ordem de serviço.
type MachineSetup struct {
	Base
	OrderServiceID int    `json:"orderServiceId,omitempty"`
	MachineNumber  string `json:"machineNumber,omitempty"`
	Speed          string `json:"speed,omitempty"`
	Temperature    string `json:"temperature,omitempty"`
	Pressure       string `json:"pressure,omitempty"`
	Observation    string `json:"observation,omitempty"`
}

// InkMix mistura de tinta utilizada na produção.
type InkMix struct {
	Base
	OrderServiceID int    `json:"orderServiceId,omitempty"`
	InkCode        string `json:"inkCode,omitempty"`
	InkDescription string `json:"inkDescription,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	Observation    string `json:"observation,omitempty"`
}

// Rewinding registro de rebobinagem/revisão de bobinas.
type Rewinding struct {
	Base
	OrderServiceID int      `json:"orderServiceId,omitempty"`
	ProductID      int      `json:"productId"`
	Quantity       int      `json:"quantity"`
	Observation    string   `json:"observation,omitempty"`
	Product        *Product `json:"product,omitempty"`
}

// Traceability rastreabilidade de matéria-prima e tinta por lote.
type Traceability struct {
	Base
	OrderServiceID int    `json:"orderServiceId,omitempty"`
	RawMaterialInk string `json:"rawMaterialInk,omitempty"`
	Lot            string `json:"lot,omitempty"`
	Quantity       int    `json:"quantity"`
}

// Anilox cilindro anilox usado na impressão flexográfica.
type Anilox struct {
	Base
	OrderServiceID int    `json:"orderServiceId,omitempty"`
	AniloxCode     string `json:"aniloxCode,omitempty"`
	Lineature      string `json:"lineature,omitempty"`
	Angle          string `json:"angle,omitempty"`
	Volume         string `json:"volume,omitempty"`
	Observation    string `json:"observation,omitempty"`
}
