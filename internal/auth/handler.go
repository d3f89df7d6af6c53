// Package auth valida a senha do gestor e emite o token que libera o painel
// de estoque e as rotas suplementares protegidas.
package auth

import (
	"crypto/subtle"

	"vendas-backend/internal/config"
	"vendas-backend/internal/store"
	"vendas-backend/internal/webutil"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Senha string `json:"senha" validate:"required"`
}

// POST /api/auth/login — compara com a senha do registro de configuração
// (senhaGestor). A senha é armazenada em texto plano por contrato da API: o
// GET /api/config a devolve ao painel, então não há o que hashear aqui.
func LoginHandler(cfg *config.Config, st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if erros := webutil.Validar(body); len(erros) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": erros})
		}

		conf, err := st.GetConfig()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar configuração")
		}

		if subtle.ConstantTimeCompare([]byte(body.Senha), []byte(conf.SenhaGestor)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Senha incorreta")
		}

		token, err := GenerateToken(cfg.JWTSecret)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar token")
		}

		return c.JSON(fiber.Map{"token": token})
	}
}
