// Package cashflow agrega lançamentos do fluxo de caixa para exibição.
package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
)

// Summary totais agregados de um conjunto de lançamentos.
type Summary struct {
	ExpectedIn  decimal.Decimal // entradas previstas
	ExpectedOut decimal.Decimal // saídas previstas
	RealizedIn  decimal.Decimal // entradas efetivadas
	RealizedOut decimal.Decimal // saídas efetivadas
}

// Balance saldo previsto (entradas − saídas).
func (s Summary) Balance() decimal.Decimal {
	return s.ExpectedIn.Sub(s.ExpectedOut)
}

// RealizedBalance saldo efetivado (entradas − saídas realizadas).
func (s Summary) RealizedBalance() decimal.Decimal {
	return s.RealizedIn.Sub(s.RealizedOut)
}

// Summarize agrega os lançamentos em totais por tipo e por estado de
// realização. Lançamento realizado sem valor efetivo usa o valor previsto.
func Summarize(entries []entity.CashFlow) Summary {
	s := Summary{
		ExpectedIn:  decimal.Zero,
		ExpectedOut: decimal.Zero,
		RealizedIn:  decimal.Zero,
		RealizedOut: decimal.Zero,
	}
	for _, e := range entries {
		expected := decimal.NewFromFloat(e.ExpectedValueReceive)
		realized := expected
		if e.ValueReceive != nil {
			realized = decimal.NewFromFloat(*e.ValueReceive)
		}
		switch e.Type {
		case entity.CashFlowInput:
			s.ExpectedIn = s.ExpectedIn.Add(expected)
			if e.Realized() {
				s.RealizedIn = s.RealizedIn.Add(realized)
			}
		case entity.CashFlowOutput:
			s.ExpectedOut = s.ExpectedOut.Add(expected)
			if e.Realized() {
				s.RealizedOut = s.RealizedOut.Add(realized)
			}
		}
	}
	return s
}
