// Package realtime reparte eventos de cambio a los visores conectados (panel admin).
// La entrega es best-effort: sin ack, sin reintentos y sin reenvío de eventos perdidos
// mientras un visor estuvo desconectado. El visor vuelve a pedir la lista completa.
package realtime

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/attendance-tracker/internal/application/ports"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

var _ ports.Notifier = (*Hub)(nil)

// DefaultSendBuffer mensajes en cola por visor si no se configura otro valor.
const DefaultSendBuffer = 16

// Message trama enviada a los visores.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscriber un visor conectado. Send se cierra al desuscribir.
type Subscriber struct {
	id     uint64
	send   chan []byte
	closed bool
}

// ID identificador del visor dentro del hub.
func (s *Subscriber) ID() uint64 { return s.id }

// Send canal con las tramas pendientes para este visor.
func (s *Subscriber) Send() <-chan []byte { return s.send }

// Hub registro de visores protegido por mutex; Publish nunca bloquea al llamador.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uint64]*Subscriber
	nextID  atomic.Uint64
	buffer  int
	dropped atomic.Uint64
	log     *logger.Logger
}

// NewHub construye el hub. buffer <= 0 usa DefaultSendBuffer.
func NewHub(buffer int, log *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultSendBuffer
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		subs:   make(map[uint64]*Subscriber),
		buffer: buffer,
		log:    log.Component("realtime"),
	}
}

// Subscribe registra un visor nuevo.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{id: h.nextID.Add(1), send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.subs[s.id] = s
	total := len(h.subs)
	h.mu.Unlock()
	h.log.Debug().Uint64("subscriber", s.id).Int("total", total).Msg("visor conectado")
	return s
}

// Unsubscribe quita el visor y cierra su canal. Llamarlo dos veces no tiene efecto.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	if s.closed {
		h.mu.Unlock()
		return
	}
	s.closed = true
	delete(h.subs, s.id)
	close(s.send)
	total := len(h.subs)
	h.mu.Unlock()
	h.log.Debug().Uint64("subscriber", s.id).Int("total", total).Msg("visor desconectado")
}

// Publish serializa el evento una vez y lo encola para cada visor. Si la cola de un
// visor está llena el mensaje se descarta para ese visor.
func (h *Hub) Publish(event string, payload any) {
	frame, err := json.Marshal(Message{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("no se pudo serializar el evento")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		select {
		case s.send <- frame:
		default:
			h.dropped.Add(1)
			h.log.Warn().Uint64("subscriber", s.id).Str("event", event).Msg("cola del visor llena, evento descartado")
		}
	}
}

// Subscribers cantidad de visores conectados.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped total de mensajes descartados por colas llenas.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}
