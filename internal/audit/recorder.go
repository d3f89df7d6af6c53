// Package audit mantém uma trilha em memória dos eventos de mudança. Assina
// o mesmo bus que alimenta o canal de push, então tudo que os clientes veem
// fica registrado aqui também.
package audit

import (
	"encoding/json"
	"sync"
	"time"

	"vendas-backend/internal/realtime"

	"github.com/asaskevich/EventBus"
)

type Registro struct {
	ID       int64           `json:"id"`
	Tipo     string          `json:"tipo"`
	Dados    json.RawMessage `json:"dados"`
	CriadoEm time.Time       `json:"criadoEm"`
}

type Recorder struct {
	mu        sync.Mutex
	seq       int64
	registros []Registro
	limite    int
}

// NewRecorder cria a trilha com capacidade máxima; ao estourar, os registros
// mais antigos são descartados.
func NewRecorder(limite int) *Recorder {
	return &Recorder{limite: limite}
}

func (r *Recorder) Attach(bus EventBus.Bus) error {
	return bus.Subscribe(realtime.TopicEvent, r.registrar)
}

func (r *Recorder) registrar(ev realtime.Event) {
	dados, err := json.Marshal(ev.Data)
	if err != nil {
		dados = json.RawMessage("null")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	reg := Registro{
		ID:       r.seq,
		Tipo:     ev.Type,
		Dados:    dados,
		CriadoEm: time.Now(),
	}

	// mais recente primeiro
	r.registros = append([]Registro{reg}, r.registros...)
	if len(r.registros) > r.limite {
		r.registros = r.registros[:r.limite]
	}
}

func (r *Recorder) Registros() []Registro {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Registro, len(r.registros))
	copy(out, r.registros)
	return out
}
