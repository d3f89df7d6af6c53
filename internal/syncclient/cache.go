package syncclient

import "sync"

// Chaves das coleções espelhadas do servidor.
const (
	QueryProdutos = "/api/produtos"
	QueryVendas   = "/api/vendas"
	QueryConfig   = "/api/config"
)

// Invalidator marca uma coleção local como velha. O payload de um evento
// nunca é aplicado direto no cache: invalidar força um refetch autoritativo.
type Invalidator interface {
	Invalidate(chave string)
}

// QueryCache rastreia quais coleções precisam de refetch. Toda chave começa
// velha — o primeiro leitor sempre busca do servidor.
type QueryCache struct {
	mu     sync.Mutex
	fresca map[string]bool
}

func NewQueryCache() *QueryCache {
	return &QueryCache{fresca: make(map[string]bool)}
}

func (q *QueryCache) Invalidate(chave string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fresca[chave] = false
}

// MarkFresh registra que a coleção acabou de ser recarregada do servidor.
func (q *QueryCache) MarkFresh(chave string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fresca[chave] = true
}

func (q *QueryCache) Stale(chave string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.fresca[chave]
}
