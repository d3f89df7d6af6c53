// Package store guarda o estado autoritativo de produtos, vendas e
// configuração. A implementação padrão é em memória (volátil, reinício
// recarrega os dados de exemplo); a implementação Postgres usa GORM.
package store

import (
	"errors"

	"vendas-backend/internal/models"
)

// ErrNotFound sinaliza operação sobre um id desconhecido. Nunca é um pânico:
// handlers traduzem para 404.
var ErrNotFound = errors.New("registro não encontrado")

type Store interface {
	GetProdutos() ([]models.Produto, error)
	GetProduto(id string) (*models.Produto, error)
	CreateProduto(novo models.NovoProduto) (*models.Produto, error)
	UpdateProduto(id string, patch models.AtualizaProduto) (*models.Produto, error)
	DeleteProduto(id string) error

	// GetVendas retorna as vendas em ordem decrescente de criação (mais
	// recente primeiro). A ordenação acontece na leitura.
	GetVendas() ([]models.Venda, error)
	GetVenda(id string) (*models.Venda, error)
	CreateVenda(nova models.NovaVenda) (*models.Venda, error)

	GetConfig() (*models.Configuracao, error)
	UpdateConfig(patch models.AtualizaConfiguracao) (*models.Configuracao, error)
}
