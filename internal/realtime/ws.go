package realtime

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// connSink adapta a conexão websocket ao contrato Sink. Broadcasts de
// requisições diferentes podem escrever no mesmo sink, então a escrita é
// serializada por conexão.
type connSink struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *connSink) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *connSink) Close() error {
	return s.conn.Close()
}

// UpgradeRequired barra requisições não-websocket no caminho do push.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebsocketHandler registra a conexão no hub e a mantém aberta. O canal é
// somente servidor→cliente: o laço de leitura existe apenas para detectar o
// fechamento; qualquer mensagem do cliente é ignorada.
func WebsocketHandler(h *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sink := &connSink{conn: conn}
		h.Register(sink)
		defer h.Unregister(sink)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
