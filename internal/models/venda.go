package models

import (
	"encoding/json"
	"time"
)

// ItemVenda é uma linha do carrinho ou de uma venda. Referencia o produto
// pelo nome, não pelo id — renomear ou excluir um produto não altera vendas
// já registradas.
type ItemVenda struct {
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
	Qtd   int     `json:"qtd"`
}

// Venda é imutável depois de criada: não existe update nem delete.
type Venda struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Data      string    `json:"data" gorm:"not null"`
	Total     float64   `json:"total" gorm:"not null"`
	Itens     string    `json:"itens" gorm:"type:text;not null"` // blob JSON de []ItemVenda
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}

func (Venda) TableName() string { return "vendas" }

// DecodeItens decodifica o blob de itens. O total NÃO é recalculado a partir
// dele; o valor informado na criação é confiado como veio.
func (v Venda) DecodeItens() ([]ItemVenda, error) {
	var itens []ItemVenda
	if err := json.Unmarshal([]byte(v.Itens), &itens); err != nil {
		return nil, err
	}
	return itens, nil
}

type NovaVenda struct {
	Data  string
	Total float64
	Itens string
}
