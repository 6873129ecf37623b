package stub

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/order"
	"github.com/kaiiquetome/GraphixWeb/internal/infrastructure/pdf"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
)

// OrderHandler regras específicas de pedido em cima do CRUD genérico:
// numeração sequencial, total calculado no servidor e documentos em PDF.
type OrderHandler struct {
	data *Dataset
	log  *logger.Logger

	mu         sync.Mutex
	nextNumber int
}

// NewOrderHandler constrói o handler de pedidos.
func NewOrderHandler(data *Dataset, log *logger.Logger) *OrderHandler {
	return &OrderHandler{data: data, log: log, nextNumber: 1}
}

// beforeSave numera pedidos novos e recalcula o total a partir dos itens.
// O total enviado pelo cliente é ignorado; o servidor é a fonte de verdade.
func (h *OrderHandler) beforeSave(o *entity.Order) {
	if o.OrderNumber == 0 {
		h.mu.Lock()
		o.OrderNumber = h.nextNumber
		h.nextNumber++
		h.mu.Unlock()
	}
	o.Total, _ = order.Total(o.Items, o.Freight, o.Discount).Float64()
}

// match filtra por Status e CustomerId.
func (h *OrderHandler) match(c *fiber.Ctx) func(entity.Order) bool {
	status := c.Query("Status")
	customerID := c.QueryInt("CustomerId", 0)
	if status == "" && customerID == 0 {
		return nil
	}
	wantStatus := entity.OrderStatus(c.QueryInt("Status", -1))
	return func(o entity.Order) bool {
		if status != "" && o.Status != wantStatus {
			return false
		}
		if customerID != 0 && o.CustomerID != customerID {
			return false
		}
		return true
	}
}

// DownloadQuote GET /order/:id/download — orçamento em PDF.
func (h *OrderHandler) DownloadQuote(c *fiber.Ctx) error {
	o, ok := h.orderFromParams(c)
	if !ok {
		return notFound(c, "pedido não encontrado")
	}
	doc, err := pdf.Quote(o, h.customerOf(o), h.accountOf(o))
	if err != nil {
		h.log.Error().Err(err).Int("order_id", o.ID).Msg("falha ao gerar orçamento")
		return fiber.ErrInternalServerError
	}
	return sendPDF(c, doc)
}

// DownloadProductionOrder GET /order/:id/ordem-servico — OS em PDF.
func (h *OrderHandler) DownloadProductionOrder(c *fiber.Ctx) error {
	o, ok := h.orderFromParams(c)
	if !ok {
		return notFound(c, "pedido não encontrado")
	}
	var serviceOrder *entity.OS
	h.data.ServiceOrders.each(func(os entity.OS) bool { return os.OrderID == o.ID }, func(os entity.OS) {
		serviceOrder = &os
	})
	doc, err := pdf.ProductionOrder(o, serviceOrder, h.customerOf(o))
	if err != nil {
		h.log.Error().Err(err).Int("order_id", o.ID).Msg("falha ao gerar ordem de serviço")
		return fiber.ErrInternalServerError
	}
	return sendPDF(c, doc)
}

// Export GET /order/export — relatório do período em PDF.
func (h *OrderHandler) Export(c *fiber.Ctx) error {
	start, end := c.Query("StartDate"), c.Query("EndDate")
	var orders []entity.Order
	h.data.Orders.each(dateRangeFilter[entity.Order, *entity.Order](start, end), func(o entity.Order) {
		orders = append(orders, o)
	})
	doc, err := pdf.OrdersReport(orders, start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("falha ao gerar relatório de pedidos")
		return fiber.ErrInternalServerError
	}
	return sendPDF(c, doc)
}

func (h *OrderHandler) orderFromParams(c *fiber.Ctx) (entity.Order, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return entity.Order{}, false
	}
	return h.data.Orders.get(id)
}

func (h *OrderHandler) customerOf(o entity.Order) *entity.Customer {
	if cust, ok := h.data.Customers.get(o.CustomerID); ok {
		return &cust
	}
	return nil
}

func (h *OrderHandler) accountOf(o entity.Order) *entity.Account {
	if acc, ok := h.data.Accounts.get(o.AccountID); ok {
		return &acc
	}
	return nil
}

func sendPDF(c *fiber.Ctx, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}
