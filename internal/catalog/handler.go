// Package catalog expõe o CRUD de produtos da vitrine e do painel de
// estoque.
package catalog

import (
	"errors"

	"vendas-backend/internal/models"
	"vendas-backend/internal/realtime"
	"vendas-backend/internal/store"
	"vendas-backend/internal/webutil"

	"github.com/gofiber/fiber/v2"
)

// CriarProdutoRequest: nome e preco precisam estar presentes, mas "" e 0 são
// valores válidos.
type CriarProdutoRequest struct {
	Nome       *string  `json:"nome" validate:"required"`
	Quantidade *int     `json:"quantidade"`
	Preco      *float64 `json:"preco" validate:"required"`
	ImagemURL  *string  `json:"imagemURL"`
}

// AtualizarProdutoRequest é um patch: campos ausentes mantêm o valor atual.
// Não há validação semântica aqui — quantidade negativa é aceita.
type AtualizarProdutoRequest struct {
	Nome       *string  `json:"nome"`
	Quantidade *int     `json:"quantidade"`
	Preco      *float64 `json:"preco"`
	ImagemURL  *string  `json:"imagemURL"`
}

// GET /api/produtos
func ListProdutosHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := st.GetProdutos()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar produtos")
		}
		return c.JSON(produtos)
	}
}

// POST /api/produtos
func CriarProdutoHandler(st store.Store, nt *realtime.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CriarProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if erros := webutil.Validar(body); len(erros) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": erros})
		}

		produto, err := st.CreateProduto(models.NovoProduto{
			Nome:       *body.Nome,
			Quantidade: body.Quantidade,
			Preco:      *body.Preco,
			ImagemURL:  body.ImagemURL,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar produto")
		}

		nt.Broadcast(realtime.EventProdutoCreated, produto)

		return c.Status(fiber.StatusCreated).JSON(produto)
	}
}

// PUT /api/produtos/:id
func AtualizarProdutoHandler(st store.Store, nt *realtime.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body AtualizarProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		produto, err := st.UpdateProduto(id, models.AtualizaProduto{
			Nome:       body.Nome,
			Quantidade: body.Quantidade,
			Preco:      body.Preco,
			ImagemURL:  body.ImagemURL,
		})
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar produto")
		}

		nt.Broadcast(realtime.EventProdutoUpdated, produto)

		return c.JSON(produto)
	}
}

// DELETE /api/produtos/:id
func ExcluirProdutoHandler(st store.Store, nt *realtime.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		err := st.DeleteProduto(id)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir produto")
		}

		nt.Broadcast(realtime.EventProdutoDeleted, fiber.Map{"id": id})

		return c.JSON(fiber.Map{"success": true})
	}
}
