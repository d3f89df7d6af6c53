package whatsapp

import (
	"errors"

	"vendas-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/vendas/:id/whatsapp — devolve número normalizado, mensagem e link
// wa.me da venda. 409 quando o número do gestor não está configurado.
func VendaLinkHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		venda, err := st.GetVenda(c.Params("id"))
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Venda não encontrada")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar venda")
		}

		cfg, err := st.GetConfig()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar configuração")
		}

		numero := NormalizarNumero(cfg.WhatsappGestor)
		if numero == "" {
			return fiber.NewError(fiber.StatusConflict, "WhatsApp do gestor não configurado")
		}

		mensagem, err := MensagemVenda(*venda)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Itens da venda ilegíveis")
		}

		return c.JSON(fiber.Map{
			"numero":   numero,
			"mensagem": mensagem,
			"url":      Link(numero, mensagem),
		})
	}
}
