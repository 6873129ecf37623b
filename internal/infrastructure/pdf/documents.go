// Package pdf gera os documentos servidos pelos endpoints de arquivo do stub
// de desenvolvimento: orçamento do pedido, ordem de serviço e relatório de
// exportação. Layout A4 com Maroto v2.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/order"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// Quote gera o orçamento do pedido em PDF.
func Quote(o entity.Order, customer *entity.Customer, account *entity.Account) ([]byte, error) {
	m := newDocument(fmt.Sprintf("Orçamento %d", o.OrderNumber))

	m.AddRows(headerRow("ORÇAMENTO", fmt.Sprintf("Pedido nº %d", o.OrderNumber)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRows(customer, account)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, item := range o.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(o)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar orçamento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ProductionOrder gera a ordem de serviço do pedido em PDF.
func ProductionOrder(o entity.Order, os *entity.OS, customer *entity.Customer) ([]byte, error) {
	m := newDocument(fmt.Sprintf("Ordem de Serviço — Pedido %d", o.OrderNumber))

	m.AddRows(headerRow("ORDEM DE SERVIÇO", fmt.Sprintf("Pedido nº %d", o.OrderNumber)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRows(customer, nil)...)

	if os != nil {
		m.AddRows(
			labelValueRow("Status", os.Status.String()),
			labelValueRow("Operador", os.Operator),
			labelValueRow("Quantidade", os.Quantity),
			labelValueRow("Bobinas (kg)", os.RollQuantityKg),
			labelValueRow("Bobinas (m)", os.RollQuantityMeters),
		)
		if os.DeliveryDeadline != nil {
			m.AddRows(labelValueRow("Prazo de entrega", os.DeliveryDeadline.Format("02/01/2006")))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(itemsHeaderRow())
	for _, item := range o.Items {
		m.AddRows(itemRow(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar ordem de serviço: %w", err)
	}
	return doc.GetBytes(), nil
}

// OrdersReport gera o relatório de exportação de pedidos do período.
func OrdersReport(orders []entity.Order, startDate, endDate string) ([]byte, error) {
	m := newDocument("Relatório de Pedidos")

	period := "todos os períodos"
	if startDate != "" || endDate != "" {
		period = fmt.Sprintf("%s a %s", startDate, endDate)
	}
	m.AddRows(headerRow("RELATÓRIO DE PEDIDOS", period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(6).Add(
		text.NewCol(2, "Pedido", props.Text{Style: fontstyle.Bold}),
		text.NewCol(3, "Status", props.Text{Style: fontstyle.Bold}),
		text.NewCol(3, "Criado em", props.Text{Style: fontstyle.Bold}),
		text.NewCol(4, "Total", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	))
	for _, o := range orders {
		created := ""
		if o.CreatedAt != nil {
			created = o.CreatedAt.Format("02/01/2006")
		}
		m.AddRows(row.New(5).Add(
			text.NewCol(2, fmt.Sprintf("%d", o.OrderNumber)),
			text.NewCol(3, o.Status.String()),
			text.NewCol(3, created),
			text.NewCol(4, formatMoney(o.Total), props.Text{Align: align.Right}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Blocos de layout ──────────────────────────────────────────────────────────

func headerRow(title, subtitle string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(title, props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New(subtitle, props.Text{Top: 6, Size: 9, Color: colorGray}),
		),
		text.NewCol(4, time.Now().Format("02/01/2006"), props.Text{Align: align.Right, Color: colorGray}),
	)
}

func partyRows(customer *entity.Customer, account *entity.Account) []core.Row {
	var rows []core.Row
	if account != nil {
		rows = append(rows, labelValueRow("Emitente", account.CorporateName))
	}
	if customer != nil {
		rows = append(rows,
			labelValueRow("Cliente", customer.CorporateName),
			labelValueRow("CNPJ", customer.Cnpj),
			labelValueRow("Contato", customer.Contact),
		)
	}
	return rows
}

func labelValueRow(label, value string) core.Row {
	return row.New(5).Add(
		text.NewCol(3, label, props.Text{Style: fontstyle.Bold, Color: colorGray}),
		text.NewCol(9, value),
	)
}

func itemsHeaderRow() core.Row {
	return row.New(6).Add(
		text.NewCol(2, "Qtd", props.Text{Style: fontstyle.Bold}),
		text.NewCol(6, "Produto", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Unitário", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Subtotal", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
}

func itemRow(item entity.OrderItem) core.Row {
	desc := fmt.Sprintf("Produto %d", item.ProductID)
	if item.Product != nil && item.Product.Description != "" {
		desc = item.Product.Description
	}
	subtotal := float64(item.Quantity) * item.Total
	return row.New(5).Add(
		text.NewCol(2, fmt.Sprintf("%d", item.Quantity)),
		text.NewCol(6, desc),
		text.NewCol(2, formatMoney(item.Total), props.Text{Align: align.Right}),
		text.NewCol(2, formatMoney(subtotal), props.Text{Align: align.Right}),
	)
}

func totalsRows(o entity.Order) []core.Row {
	total := order.Total(o.Items, o.Freight, o.Discount)
	return []core.Row{
		row.New(5).Add(
			text.NewCol(8, ""),
			text.NewCol(2, "Frete", props.Text{Color: colorGray}),
			text.NewCol(2, formatMoney(o.Freight), props.Text{Align: align.Right}),
		),
		row.New(5).Add(
			text.NewCol(8, ""),
			text.NewCol(2, "Desconto", props.Text{Color: colorGray}),
			text.NewCol(2, formatMoney(o.Discount), props.Text{Align: align.Right}),
		),
		row.New(7).Add(
			text.NewCol(8, ""),
			text.NewCol(2, "TOTAL", props.Text{Style: fontstyle.Bold}),
			text.NewCol(2, "R$ "+total.StringFixed(2), props.Text{Style: fontstyle.Bold, Align: align.Right}),
		),
	}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
