package realtime

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// Sink é um destino de eventos gravável de forma independente. A conexão
// websocket é um Sink; testes usam implementações falsas.
type Sink interface {
	WriteJSON(v any) error
	Close() error
}

// Hub é o registro de observadores do canal de push.
type Hub struct {
	mu    sync.Mutex
	sinks map[Sink]struct{}
}

func NewHub() *Hub {
	return &Hub{sinks: make(map[Sink]struct{})}
}

func (h *Hub) Attach(bus EventBus.Bus) error {
	return bus.Subscribe(TopicEvent, h.Broadcast)
}

// Register envia o initial_sync e só então adiciona o sink ao registro:
// enquanto a escrita está em voo o sink é invisível para Broadcast, então
// nenhum evento concorrente chega antes do initial_sync.
func (h *Hub) Register(s Sink) {
	ev := Event{Type: EventInitialSync, Data: map[string]any{"timestamp": time.Now().UnixMilli()}}
	if err := s.WriteJSON(ev); err != nil {
		zap.S().Warnw("falha no initial_sync, conexão descartada", "err", err)
		_ = s.Close()
		return
	}

	h.mu.Lock()
	h.sinks[s] = struct{}{}
	total := len(h.sinks)
	h.mu.Unlock()

	zap.S().Debugw("nova conexão no canal de push", "conexoes", total)
}

func (h *Hub) Unregister(s Sink) {
	h.mu.Lock()
	delete(h.sinks, s)
	h.mu.Unlock()
}

// Broadcast entrega o evento a um snapshot dos sinks registrados. Falha de
// escrita remove só aquele sink; os demais continuam recebendo.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	snapshot := make([]Sink, 0, len(h.sinks))
	for s := range h.sinks {
		snapshot = append(snapshot, s)
	}
	h.mu.Unlock()

	for _, s := range snapshot {
		if err := s.WriteJSON(ev); err != nil {
			zap.S().Warnw("falha ao entregar evento, conexão removida",
				"type", ev.Type, "err", err)
			h.Unregister(s)
			_ = s.Close()
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sinks)
}
