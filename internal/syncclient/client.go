// Package syncclient mantém uma conexão viva com o canal de push e reconcilia
// o cache local: cada evento invalida as coleções implicadas, forçando uma
// releitura autoritativa em vez de confiar no payload empurrado.
package syncclient

import (
	"encoding/json"
	"sync"
	"time"

	"vendas-backend/internal/realtime"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"
)

// State é o estado da máquina de conexão.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// ReconnectDelay é o atraso fixo entre a queda e a tentativa de reconexão.
const ReconnectDelay = 3 * time.Second

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Client mantém no máximo uma conexão lógica e no máximo um timer de
// reconexão pendente por vez.
type Client struct {
	url   string
	cache Invalidator
	delay time.Duration

	mu    sync.Mutex
	state State
	conn  *websocket.Conn
	timer *time.Timer
}

func New(url string, cache Invalidator) *Client {
	return &Client{url: url, cache: cache, delay: ReconnectDelay}
}

// Connect abre a conexão se ainda não houver uma ativa ou em andamento e
// cancela qualquer reconexão pendente.
func (c *Client) Connect() error {
	c.mu.Lock()
	if c.state != Disconnected {
		c.mu.Unlock()
		return nil
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.state = Connecting
	c.mu.Unlock()

	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		zap.S().Warnw("falha ao conectar no canal de push", "url", c.url, "err", err)
		c.mu.Lock()
		c.state = Disconnected
		c.mu.Unlock()
		c.scheduleReconnect()
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.state = Connected
	c.mu.Unlock()

	go c.readLoop(conn)
	return nil
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			break
		}
		c.handleEvent(env.Type)
	}

	_ = conn.Close()

	c.mu.Lock()
	// Close() pode já ter zerado a conexão; só a queda da conexão corrente
	// muda o estado
	if c.conn == conn {
		c.conn = nil
		c.state = Disconnected
		c.mu.Unlock()
		zap.S().Info("canal de push caiu, reconexão agendada")
		c.scheduleReconnect()
		return
	}
	c.mu.Unlock()
}

// handleEvent aplica a tabela de invalidação do protocolo.
func (c *Client) handleEvent(tipo string) {
	switch tipo {
	case realtime.EventInitialSync:
		c.cache.Invalidate(QueryProdutos)
		c.cache.Invalidate(QueryVendas)
		c.cache.Invalidate(QueryConfig)

	case realtime.EventProdutoCreated,
		realtime.EventProdutoUpdated,
		realtime.EventProdutoDeleted,
		realtime.EventProdutosUpdated:
		c.cache.Invalidate(QueryProdutos)

	case realtime.EventVendaCreated:
		// a venda mexe no estoque
		c.cache.Invalidate(QueryVendas)
		c.cache.Invalidate(QueryProdutos)

	case realtime.EventConfigUpdated:
		c.cache.Invalidate(QueryConfig)

	default:
		zap.S().Debugw("evento desconhecido ignorado", "type", tipo)
	}
}

// scheduleReconnect agenda exatamente uma tentativa. Se já houver timer
// pendente ou a conexão tiver voltado nesse meio-tempo, não faz nada.
func (c *Client) scheduleReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Disconnected || c.timer != nil {
		return
	}
	c.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		c.timer = nil
		c.mu.Unlock()
		_ = c.Connect()
	})
}

// Close derruba a conexão e cancela a reconexão pendente.
func (c *Client) Close() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	conn := c.conn
	c.conn = nil
	c.state = Disconnected
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
