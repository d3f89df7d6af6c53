// Package realtime propaga mudanças de estado para todos os clientes
// conectados. A entrega é melhor-esforço: sem fila, sem replay, sem ack —
// quem perder um evento se recupera no próximo initial_sync ou refetch.
package realtime

// Tipos de evento do canal de push. O cliente reage invalidando as coleções
// implicadas, nunca aplicando o payload direto no cache local.
const (
	EventInitialSync     = "initial_sync"
	EventProdutoCreated  = "produto_created"
	EventProdutoUpdated  = "produto_updated"
	EventProdutoDeleted  = "produto_deleted"
	EventProdutosUpdated = "produtos_updated"
	EventVendaCreated    = "venda_created"
	EventConfigUpdated   = "config_updated"
)

// TopicEvent é o tópico do bus interno por onde os eventos trafegam até os
// assinantes (hub de websockets, trilha de auditoria).
const TopicEvent = "realtime:event"

// Event é o envelope JSON enviado ao cliente.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
