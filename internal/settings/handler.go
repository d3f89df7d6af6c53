// Package settings expõe o registro único de configuração: número de
// WhatsApp do gestor e senha do painel de estoque.
package settings

import (
	"vendas-backend/internal/models"
	"vendas-backend/internal/realtime"
	"vendas-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AtualizarConfigRequest struct {
	WhatsappGestor *string `json:"whatsappGestor"`
	SenhaGestor    *string `json:"senhaGestor"`
}

// GET /api/config
func GetConfigHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := st.GetConfig()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar configuração")
		}
		return c.JSON(cfg)
	}
}

// PUT /api/config — patch parcial; corpo vazio é um no-op válido.
func UpdateConfigHandler(st store.Store, nt *realtime.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AtualizarConfigRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		cfg, err := st.UpdateConfig(models.AtualizaConfiguracao{
			WhatsappGestor: body.WhatsappGestor,
			SenhaGestor:    body.SenhaGestor,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar configuração")
		}

		nt.Broadcast(realtime.EventConfigUpdated, cfg)

		return c.JSON(cfg)
	}
}
