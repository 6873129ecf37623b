package order

import (
	"github.com/shopspring/decimal"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
)

// Total calcula o total do pedido: soma(quantidade × valor unitário) + frete
// − desconto. O cálculo usa decimal para não acumular erro binário entre os
// itens; o valor serve apenas para exibição, o backend recalcula.
func Total(items []entity.OrderItem, freight, discount float64) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		unit := decimal.NewFromFloat(item.Total)
		qty := decimal.NewFromInt(int64(item.Quantity))
		sum = sum.Add(unit.Mul(qty))
	}
	sum = sum.Add(decimal.NewFromFloat(freight))
	sum = sum.Sub(decimal.NewFromFloat(discount))
	return sum.Round(2)
}
