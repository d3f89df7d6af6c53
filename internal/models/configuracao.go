package models

const (
	// ConfigID é o id fixo do registro único de configuração.
	ConfigID = "config"
	// SenhaGestorPadrao é a senha inicial do painel de estoque.
	SenhaGestorPadrao = "sucesso2026"
)

// Configuracao é um singleton: existe exatamente uma instância, nunca é
// criada nem excluída pela API, apenas atualizada.
type Configuracao struct {
	ID             string `json:"id" gorm:"primaryKey;size:36"`
	WhatsappGestor string `json:"whatsappGestor" gorm:"column:whatsapp_gestor"`
	SenhaGestor    string `json:"senhaGestor" gorm:"column:senha_gestor"`
}

func (Configuracao) TableName() string { return "configuracoes" }

func ConfiguracaoPadrao() Configuracao {
	return Configuracao{
		ID:             ConfigID,
		WhatsappGestor: "",
		SenhaGestor:    SenhaGestorPadrao,
	}
}

type AtualizaConfiguracao struct {
	WhatsappGestor *string
	SenhaGestor    *string
}
