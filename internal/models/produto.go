package models

// Produto é um item do catálogo. O ID é atribuído pelo store e nunca muda.
type Produto struct {
	ID         string  `json:"id" gorm:"primaryKey;size:36"`
	Nome       string  `json:"nome" gorm:"size:200;not null"`
	Quantidade int     `json:"quantidade" gorm:"not null;default:0"`
	Preco      float64 `json:"preco" gorm:"not null"`
	ImagemURL  string  `json:"imagemURL" gorm:"column:imagem_url;type:text"`
}

func (Produto) TableName() string { return "produtos" }

// NovoProduto carrega os campos de criação. Quantidade e ImagemURL são
// opcionais: nil vira 0 e "" respectivamente.
type NovoProduto struct {
	Nome       string
	Quantidade *int
	Preco      float64
	ImagemURL  *string
}

// AtualizaProduto é um patch parcial: só campos não-nil são aplicados.
type AtualizaProduto struct {
	Nome       *string
	Quantidade *int
	Preco      *float64
	ImagemURL  *string
}
