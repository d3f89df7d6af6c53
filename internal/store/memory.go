package store

import (
	"sort"
	"sync"
	"time"

	"vendas-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemStore é o store em memória. Todo estado se perde no reinício; o
// construtor semeia os três produtos de exemplo e a configuração padrão.
type MemStore struct {
	mu       sync.RWMutex
	produtos map[string]models.Produto
	vendas   map[string]models.Venda
	config   models.Configuracao

	// timestamps de venda estritamente crescentes, para que a ordenação
	// decrescente seja estável mesmo com criações no mesmo instante
	ultimaVenda time.Time
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	m := &MemStore{
		produtos: make(map[string]models.Produto),
		vendas:   make(map[string]models.Venda),
		config:   models.ConfiguracaoPadrao(),
	}

	for _, p := range []models.Produto{
		{Nome: "Camiseta", Quantidade: 10, Preco: 49.90},
		{Nome: "Boné", Quantidade: 5, Preco: 29.90},
		{Nome: "Chinelo", Quantidade: 8, Preco: 34.50},
	} {
		p.ID = uuid.NewString()
		m.produtos[p.ID] = p
	}

	return m
}

func (m *MemStore) GetProdutos() ([]models.Produto, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Produto, 0, len(m.produtos))
	for _, p := range m.produtos {
		out = append(out, p)
	}
	return out, nil
}

func (m *MemStore) GetProduto(id string) (*models.Produto, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.produtos[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemStore) CreateProduto(novo models.NovoProduto) (*models.Produto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := models.Produto{
		ID:   uuid.NewString(),
		Nome: novo.Nome,
		// quantidade omitida vira 0, imagem omitida vira ""
		Quantidade: 0,
		Preco:      novo.Preco,
		ImagemURL:  "",
	}
	if novo.Quantidade != nil {
		p.Quantidade = *novo.Quantidade
	}
	if novo.ImagemURL != nil {
		p.ImagemURL = *novo.ImagemURL
	}

	m.produtos[p.ID] = p
	return &p, nil
}

func (m *MemStore) UpdateProduto(id string, patch models.AtualizaProduto) (*models.Produto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.produtos[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Nome != nil {
		p.Nome = *patch.Nome
	}
	if patch.Quantidade != nil {
		p.Quantidade = *patch.Quantidade
	}
	if patch.Preco != nil {
		p.Preco = *patch.Preco
	}
	if patch.ImagemURL != nil {
		p.ImagemURL = *patch.ImagemURL
	}

	m.produtos[id] = p
	return &p, nil
}

func (m *MemStore) DeleteProduto(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.produtos[id]; !ok {
		return ErrNotFound
	}
	delete(m.produtos, id)
	return nil
}

func (m *MemStore) GetVendas() ([]models.Venda, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Venda, 0, len(m.vendas))
	for _, v := range m.vendas {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (m *MemStore) GetVenda(id string) (*models.Venda, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vendas[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

// CreateVenda grava a venda como veio e ajusta o estoque: cada item decrementa
// todo produto com o mesmo nome, sem piso.
func (m *MemStore) CreateVenda(nova models.NovaVenda) (*models.Venda, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := time.Now()
	if !ts.After(m.ultimaVenda) {
		ts = m.ultimaVenda.Add(time.Nanosecond)
	}
	m.ultimaVenda = ts

	v := models.Venda{
		ID:        uuid.NewString(),
		Data:      nova.Data,
		Total:     nova.Total,
		Itens:     nova.Itens,
		Timestamp: ts,
	}
	m.vendas[v.ID] = v

	itens, err := v.DecodeItens()
	if err != nil {
		// blob ilegível: venda fica registrada, ajuste é pulado
		zap.S().Warnw("itens da venda ilegíveis, ajuste de estoque pulado",
			"venda_id", v.ID, "err", err)
		return &v, nil
	}

	for _, item := range itens {
		for id, p := range m.produtos {
			if p.Nome == item.Nome {
				p.Quantidade -= item.Qtd
				m.produtos[id] = p
			}
		}
	}

	return &v, nil
}

func (m *MemStore) GetConfig() (*models.Configuracao, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := m.config
	return &cfg, nil
}

func (m *MemStore) UpdateConfig(patch models.AtualizaConfiguracao) (*models.Configuracao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if patch.WhatsappGestor != nil {
		m.config.WhatsappGestor = *patch.WhatsappGestor
	}
	if patch.SenhaGestor != nil {
		m.config.SenhaGestor = *patch.SenhaGestor
	}

	cfg := m.config
	return &cfg, nil
}
