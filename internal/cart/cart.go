// Package cart modela o carrinho do lado do cliente. É estado efêmero de UI,
// nunca persistido no servidor: vira o blob de itens de uma venda no
// fechamento.
package cart

import (
	"encoding/json"

	"vendas-backend/internal/models"
)

type Cart struct {
	itens []models.ItemVenda
}

// Adicionar insere o produto no carrinho. Itens são chaveados por nome:
// adicionar um nome já presente soma as quantidades em vez de duplicar a
// linha.
func (c *Cart) Adicionar(nome string, preco float64, qtd int) {
	for i := range c.itens {
		if c.itens[i].Nome == nome {
			c.itens[i].Qtd += qtd
			return
		}
	}
	c.itens = append(c.itens, models.ItemVenda{Nome: nome, Preco: preco, Qtd: qtd})
}

// Remover descarta a linha na posição dada; índice fora do intervalo é
// ignorado.
func (c *Cart) Remover(i int) {
	if i < 0 || i >= len(c.itens) {
		return
	}
	c.itens = append(c.itens[:i], c.itens[i+1:]...)
}

func (c *Cart) Itens() []models.ItemVenda {
	out := make([]models.ItemVenda, len(c.itens))
	copy(out, c.itens)
	return out
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.itens {
		total += item.Preco * float64(item.Qtd)
	}
	return total
}

func (c *Cart) Len() int { return len(c.itens) }

func (c *Cart) Limpar() { c.itens = nil }

// BlobItens serializa as linhas no formato opaco gravado na venda.
func (c *Cart) BlobItens() (string, error) {
	b, err := json.Marshal(c.Itens())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
