// Package sales registra vendas. Venda é append-only: criada uma vez, nunca
// alterada nem excluída.
package sales

import (
	"vendas-backend/internal/models"
	"vendas-backend/internal/realtime"
	"vendas-backend/internal/store"
	"vendas-backend/internal/webutil"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CriarVendaRequest exige presença dos três campos; vazio e zero são aceitos.
type CriarVendaRequest struct {
	Data  *string  `json:"data" validate:"required"`
	Total *float64 `json:"total" validate:"required"`
	Itens *string  `json:"itens" validate:"required"` // blob JSON de []ItemVenda
}

// GET /api/vendas — mais recentes primeiro
func ListVendasHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendas, err := st.GetVendas()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar vendas")
		}
		return c.JSON(vendas)
	}
}

// POST /api/vendas — grava a venda, ajusta o estoque e avisa os clientes. O
// total é confiado como veio; não é recalculado a partir dos itens.
func CriarVendaHandler(st store.Store, nt *realtime.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CriarVendaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if erros := webutil.Validar(body); len(erros) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": erros})
		}

		venda, err := st.CreateVenda(models.NovaVenda{
			Data:  *body.Data,
			Total: *body.Total,
			Itens: *body.Itens,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao registrar venda")
		}

		// a venda mexe no estoque, então além do venda_created os clientes
		// recebem a lista de produtos já ajustada
		nt.Broadcast(realtime.EventVendaCreated, venda)
		if produtos, perr := st.GetProdutos(); perr == nil {
			nt.Broadcast(realtime.EventProdutosUpdated, produtos)
		} else {
			zap.S().Warnw("falha ao carregar produtos após venda", "err", perr)
		}

		return c.Status(fiber.StatusCreated).JSON(venda)
	}
}
