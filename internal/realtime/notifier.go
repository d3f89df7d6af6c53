package realtime

import (
	"github.com/asaskevich/EventBus"
)

// Notifier publica eventos de mudança no bus interno. Handlers chamam
// Broadcast depois de cada mutação bem-sucedida do store.
type Notifier struct {
	bus EventBus.Bus
}

func NewNotifier(bus EventBus.Bus) *Notifier {
	return &Notifier{bus: bus}
}

func (n *Notifier) Broadcast(tipo string, dados any) {
	n.bus.Publish(TopicEvent, Event{Type: tipo, Data: dados})
}
