package audit

import (
	"testing"

	"vendas-backend/internal/realtime"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RegistraEventosDoBus(t *testing.T) {
	bus := EventBus.New()
	rec := NewRecorder(10)
	require.NoError(t, rec.Attach(bus))

	nt := realtime.NewNotifier(bus)
	nt.Broadcast(realtime.EventProdutoCreated, map[string]any{"id": "p1"})
	nt.Broadcast(realtime.EventVendaCreated, map[string]any{"id": "v1"})

	registros := rec.Registros()
	require.Len(t, registros, 2)

	// mais recente primeiro
	assert.Equal(t, realtime.EventVendaCreated, registros[0].Tipo)
	assert.Equal(t, realtime.EventProdutoCreated, registros[1].Tipo)
	assert.JSONEq(t, `{"id":"v1"}`, string(registros[0].Dados))
	assert.False(t, registros[0].CriadoEm.IsZero())
}

func TestRecorder_DescartaOsMaisAntigosNoLimite(t *testing.T) {
	bus := EventBus.New()
	rec := NewRecorder(2)
	require.NoError(t, rec.Attach(bus))

	nt := realtime.NewNotifier(bus)
	nt.Broadcast(realtime.EventProdutoCreated, "a")
	nt.Broadcast(realtime.EventProdutoUpdated, "b")
	nt.Broadcast(realtime.EventProdutoDeleted, "c")

	registros := rec.Registros()
	require.Len(t, registros, 2)
	assert.Equal(t, realtime.EventProdutoDeleted, registros[0].Tipo)
	assert.Equal(t, realtime.EventProdutoUpdated, registros[1].Tipo)
}

func TestRecorder_SemEventos(t *testing.T) {
	rec := NewRecorder(10)
	assert.Empty(t, rec.Registros())
}
