package cashflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/cashflow"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
)

func TestSummarize(t *testing.T) {
	received := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	lessThanExpected := 900.0

	entries := []entity.CashFlow{
		// entrada prevista, ainda não realizada
		{Type: entity.CashFlowInput, Category: entity.CategorySales, ExpectedValueReceive: 1500},
		// entrada realizada com valor efetivo menor que o previsto
		{
			Type:                 entity.CashFlowInput,
			Category:             entity.CategorySales,
			ExpectedValueReceive: 1000,
			ValueReceive:         &lessThanExpected,
			DateReceive:          &received,
		},
		// saída realizada sem valor efetivo: usa o previsto
		{
			Type:                 entity.CashFlowOutput,
			Category:             entity.CategoryRent,
			ExpectedValueReceive: 400,
			DateReceive:          &received,
		},
		// saída prevista
		{Type: entity.CashFlowOutput, Category: entity.CategorySalaries, ExpectedValueReceive: 600},
	}

	s := cashflow.Summarize(entries)

	assert.Equal(t, "2500.00", s.ExpectedIn.StringFixed(2), "entradas previstas")
	assert.Equal(t, "1000.00", s.ExpectedOut.StringFixed(2), "saídas previstas")
	assert.Equal(t, "900.00", s.RealizedIn.StringFixed(2), "entradas realizadas usam o valor efetivo")
	assert.Equal(t, "400.00", s.RealizedOut.StringFixed(2), "saída realizada sem valor efetivo usa o previsto")
	assert.Equal(t, "1500.00", s.Balance().StringFixed(2), "saldo previsto")
	assert.Equal(t, "500.00", s.RealizedBalance().StringFixed(2), "saldo realizado")
}

func TestSummarizeVazio(t *testing.T) {
	s := cashflow.Summarize(nil)
	assert.True(t, s.Balance().IsZero(), "sem lançamentos o saldo é zero")
	assert.True(t, s.RealizedBalance().IsZero())
}
