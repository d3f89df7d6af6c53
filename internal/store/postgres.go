package store

import (
	"errors"
	"time"

	"vendas-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SQLStore é a alternativa persistente ao MemStore, com o mesmo contrato.
// Handlers e notifier não sabem qual dos dois está por trás.
type SQLStore struct {
	db *gorm.DB
}

var _ Store = (*SQLStore)(nil)

func OpenPostgres(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewSQLStore(db)
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&models.Produto{}, &models.Venda{}, &models.Configuracao{}); err != nil {
		return nil, err
	}

	s := &SQLStore{db: db}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// seed replica o estado inicial do MemStore: produtos de exemplo quando o
// catálogo está vazio e a linha única de configuração quando ausente.
func (s *SQLStore) seed() error {
	var total int64
	if err := s.db.Model(&models.Produto{}).Count(&total).Error; err != nil {
		return err
	}
	if total == 0 {
		exemplos := []models.Produto{
			{ID: uuid.NewString(), Nome: "Camiseta", Quantidade: 10, Preco: 49.90},
			{ID: uuid.NewString(), Nome: "Boné", Quantidade: 5, Preco: 29.90},
			{ID: uuid.NewString(), Nome: "Chinelo", Quantidade: 8, Preco: 34.50},
		}
		if err := s.db.Create(&exemplos).Error; err != nil {
			return err
		}
		zap.S().Info("catálogo vazio, produtos de exemplo semeados")
	}

	cfg := models.ConfiguracaoPadrao()
	return s.db.Where(models.Configuracao{ID: models.ConfigID}).FirstOrCreate(&cfg).Error
}

func (s *SQLStore) GetProdutos() ([]models.Produto, error) {
	var produtos []models.Produto
	if err := s.db.Find(&produtos).Error; err != nil {
		return nil, err
	}
	return produtos, nil
}

func (s *SQLStore) GetProduto(id string) (*models.Produto, error) {
	var p models.Produto
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) CreateProduto(novo models.NovoProduto) (*models.Produto, error) {
	p := models.Produto{
		ID:    uuid.NewString(),
		Nome:  novo.Nome,
		Preco: novo.Preco,
	}
	if novo.Quantidade != nil {
		p.Quantidade = *novo.Quantidade
	}
	if novo.ImagemURL != nil {
		p.ImagemURL = *novo.ImagemURL
	}

	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) UpdateProduto(id string, patch models.AtualizaProduto) (*models.Produto, error) {
	var p models.Produto
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
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

	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) DeleteProduto(id string) error {
	res := s.db.Delete(&models.Produto{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) GetVendas() ([]models.Venda, error) {
	var vendas []models.Venda
	if err := s.db.Order("timestamp desc").Find(&vendas).Error; err != nil {
		return nil, err
	}
	return vendas, nil
}

func (s *SQLStore) GetVenda(id string) (*models.Venda, error) {
	var v models.Venda
	if err := s.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *SQLStore) CreateVenda(nova models.NovaVenda) (*models.Venda, error) {
	v := models.Venda{
		ID:        uuid.NewString(),
		Data:      nova.Data,
		Total:     nova.Total,
		Itens:     nova.Itens,
		Timestamp: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&v).Error; err != nil {
			return err
		}

		itens, derr := v.DecodeItens()
		if derr != nil {
			zap.S().Warnw("itens da venda ilegíveis, ajuste de estoque pulado",
				"venda_id", v.ID, "err", derr)
			return nil
		}

		// decrementa por NOME, sem piso: nomes duplicados são todos
		// atingidos e a quantidade pode ficar negativa
		for _, item := range itens {
			if err := tx.Model(&models.Produto{}).
				Where("nome = ?", item.Nome).
				UpdateColumn("quantidade", gorm.Expr("quantidade - ?", item.Qtd)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *SQLStore) GetConfig() (*models.Configuracao, error) {
	var cfg models.Configuracao
	if err := s.db.First(&cfg, "id = ?", models.ConfigID).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *SQLStore) UpdateConfig(patch models.AtualizaConfiguracao) (*models.Configuracao, error) {
	var cfg models.Configuracao
	if err := s.db.First(&cfg, "id = ?", models.ConfigID).Error; err != nil {
		return nil, err
	}

	if patch.WhatsappGestor != nil {
		cfg.WhatsappGestor = *patch.WhatsappGestor
	}
	if patch.SenhaGestor != nil {
		cfg.SenhaGestor = *patch.SenhaGestor
	}

	if err := s.db.Save(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}
