// Package entity contém os registros planos espelhados 1:1 com os DTOs do
// backend GraphixWeb. O cliente nunca é dono do estado: toda listagem é uma
// leitura direta e o backend é a única fonte de verdade.
package entity

import "time"

// Base campos comuns a todo recurso persistido pelo backend.
type Base struct {
	ID         int        `json:"id,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
}

// GetID devolve o id do registro.
func (b *Base) GetID() int { return b.ID }

// SetID define o id do registro.
func (b *Base) SetID(id int) { b.ID = id }

// Created devolve o instante de criação, se presente.
func (b *Base) Created() *time.Time { return b.CreatedAt }

// SetCreated define o instante de criação.
func (b *Base) SetCreated(t time.Time) { b.CreatedAt = &t }

// Touch registra o instante da última modificação.
func (b *Base) Touch(t time.Time) { b.ModifiedAt = &t }
