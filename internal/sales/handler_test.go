package sales

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendas-backend/internal/models"
	"vendas-backend/internal/realtime"
	"vendas-backend/internal/store"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ambiente struct {
	app     *fiber.App
	store   *store.MemStore
	eventos *[]realtime.Event
}

func novoAmbiente(t *testing.T) ambiente {
	t.Helper()

	st := store.NewMemStore()
	bus := EventBus.New()
	nt := realtime.NewNotifier(bus)

	var eventos []realtime.Event
	require.NoError(t, bus.Subscribe(realtime.TopicEvent, func(ev realtime.Event) {
		eventos = append(eventos, ev)
	}))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro interno do servidor"})
		},
	})
	app.Get("/api/vendas", ListVendasHandler(st))
	app.Post("/api/vendas", CriarVendaHandler(st, nt))

	return ambiente{app: app, store: st, eventos: &eventos}
}

func postJSON(t *testing.T, app *fiber.App, alvo, corpo string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", alvo, strings.NewReader(corpo))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func corpoJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "corpo: %s", raw)
	return out
}

func acharProduto(t *testing.T, st *store.MemStore, nome string) models.Produto {
	t.Helper()
	produtos, err := st.GetProdutos()
	require.NoError(t, err)
	for _, p := range produtos {
		if p.Nome == nome {
			return p
		}
	}
	t.Fatalf("produto %q não encontrado", nome)
	return models.Produto{}
}

func TestCriarVenda_AjustaEstoqueEAvisaClientes(t *testing.T) {
	env := novoAmbiente(t)

	// Camiseta vem do seed com quantidade 10
	corpo := `{"data":"01/09/2026 10:30:00","total":99.8,"itens":"[{\"nome\":\"Camiseta\",\"preco\":49.9,\"qtd\":2}]"}`
	resp := postJSON(t, env.app, "/api/vendas", corpo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	venda := corpoJSON[models.Venda](t, resp)
	assert.NotEmpty(t, venda.ID)
	assert.Equal(t, 99.8, venda.Total)
	assert.False(t, venda.Timestamp.IsZero())

	assert.Equal(t, 8, acharProduto(t, env.store, "Camiseta").Quantidade)

	// venda_created primeiro, produtos_updated (lista já ajustada) em seguida
	require.Len(t, *env.eventos, 2)
	assert.Equal(t, realtime.EventVendaCreated, (*env.eventos)[0].Type)
	assert.Equal(t, realtime.EventProdutosUpdated, (*env.eventos)[1].Type)

	produtos, ok := (*env.eventos)[1].Data.([]models.Produto)
	require.True(t, ok)
	assert.Len(t, produtos, 3)
}

func TestCriarVenda_TotalEConfiadoComoVeio(t *testing.T) {
	env := novoAmbiente(t)

	// total incoerente com os itens: aceito do mesmo jeito
	corpo := `{"data":"x","total":1,"itens":"[{\"nome\":\"Camiseta\",\"preco\":49.9,\"qtd\":2}]"}`
	resp := postJSON(t, env.app, "/api/vendas", corpo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	venda := corpoJSON[models.Venda](t, resp)
	assert.Equal(t, float64(1), venda.Total)
}

func TestCriarVenda_CamposPresentesPoremVaziosSaoAceitos(t *testing.T) {
	env := novoAmbiente(t)

	// só a presença é exigida; com itens ilegíveis a venda é registrada e o
	// ajuste de estoque é pulado
	resp := postJSON(t, env.app, "/api/vendas", `{"data":"","total":0,"itens":""}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	venda := corpoJSON[models.Venda](t, resp)
	assert.NotEmpty(t, venda.ID)
	assert.Equal(t, float64(0), venda.Total)

	assert.Equal(t, 10, acharProduto(t, env.store, "Camiseta").Quantidade)
}

func TestCriarVenda_SchemaInvalido(t *testing.T) {
	env := novoAmbiente(t)

	resp := postJSON(t, env.app, "/api/vendas", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	corpo := corpoJSON[map[string]json.RawMessage](t, resp)
	var erros []map[string]string
	require.NoError(t, json.Unmarshal(corpo["error"], &erros))
	assert.Len(t, erros, 3) // data, total e itens obrigatórios

	assert.Empty(t, *env.eventos)
}

func TestListVendas_MaisRecentePrimeiro(t *testing.T) {
	env := novoAmbiente(t)

	respA := postJSON(t, env.app, "/api/vendas", `{"data":"a","total":1,"itens":"[]"}`)
	require.Equal(t, http.StatusCreated, respA.StatusCode)
	a := corpoJSON[models.Venda](t, respA)

	respB := postJSON(t, env.app, "/api/vendas", `{"data":"b","total":2,"itens":"[]"}`)
	require.Equal(t, http.StatusCreated, respB.StatusCode)
	b := corpoJSON[models.Venda](t, respB)

	req := httptest.NewRequest("GET", "/api/vendas", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	vendas := corpoJSON[[]models.Venda](t, resp)
	require.Len(t, vendas, 2)
	assert.Equal(t, b.ID, vendas[0].ID)
	assert.Equal(t, a.ID, vendas[1].ID)
}
