// Package order concentra as regras do fluxo comercial do pedido: o portão
// de transição de status e o cálculo do total.
package order

import "github.com/kaiiquetome/GraphixWeb/internal/domain/entity"

// CanTransition informa se a mudança de status respeita o fluxo:
//
//	Orçamento    → qualquer status
//	Em Execução  → Finalizado ou Recusado
//	Finalizado   → terminal
//	Recusado     → Orçamento
//
// Este portão é uma guarda de usabilidade no cliente; o backend reaplica as
// mesmas regras e é a autoridade final.
func CanTransition(from, to entity.OrderStatus) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	switch from {
	case entity.StatusQuote:
		return true
	case entity.StatusInProgress:
		return to == entity.StatusCompleted || to == entity.StatusRefused
	case entity.StatusCompleted:
		return false
	case entity.StatusRefused:
		return to == entity.StatusQuote
	default:
		return false
	}
}

// AllowedTransitions lista os destinos válidos a partir de um status, na
// ordem de exibição da UI.
func AllowedTransitions(from entity.OrderStatus) []entity.OrderStatus {
	all := []entity.OrderStatus{
		entity.StatusQuote,
		entity.StatusInProgress,
		entity.StatusCompleted,
		entity.StatusRefused,
	}
	var out []entity.OrderStatus
	for _, to := range all {
		if CanTransition(from, to) {
			out = append(out, to)
		}
	}
	return out
}
