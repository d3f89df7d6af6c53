package cart

import (
	"testing"

	"vendas-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdicionar_MesmoNomeSomaQuantidades(t *testing.T) {
	var c Cart

	c.Adicionar("Camiseta", 49.90, 1)
	c.Adicionar("Boné", 29.90, 1)
	c.Adicionar("Camiseta", 49.90, 2)

	itens := c.Itens()
	require.Len(t, itens, 2)
	assert.Equal(t, models.ItemVenda{Nome: "Camiseta", Preco: 49.90, Qtd: 3}, itens[0])
	assert.Equal(t, models.ItemVenda{Nome: "Boné", Preco: 29.90, Qtd: 1}, itens[1])
}

func TestTotal(t *testing.T) {
	var c Cart
	assert.Equal(t, 0.0, c.Total())

	c.Adicionar("Camiseta", 49.90, 2)
	c.Adicionar("Boné", 29.90, 1)
	assert.InDelta(t, 129.70, c.Total(), 0.0001)
}

func TestRemover(t *testing.T) {
	var c Cart
	c.Adicionar("Camiseta", 49.90, 1)
	c.Adicionar("Boné", 29.90, 1)

	c.Remover(0)
	itens := c.Itens()
	require.Len(t, itens, 1)
	assert.Equal(t, "Boné", itens[0].Nome)

	// índice fora do intervalo é ignorado
	c.Remover(5)
	c.Remover(-1)
	assert.Equal(t, 1, c.Len())
}

func TestBlobItens(t *testing.T) {
	var c Cart

	blob, err := c.BlobItens()
	require.NoError(t, err)
	assert.Equal(t, "[]", blob)

	c.Adicionar("Camiseta", 49.90, 2)
	blob, err = c.BlobItens()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"nome":"Camiseta","preco":49.9,"qtd":2}]`, blob)
}

func TestLimpar(t *testing.T) {
	var c Cart
	c.Adicionar("Camiseta", 49.90, 1)
	c.Limpar()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())
}
