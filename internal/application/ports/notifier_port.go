package ports

// Notifier define el puerto de salida para las actualizaciones en vivo.
// Publish es best-effort y no bloquea: sin ack, sin reintentos y sin orden entre
// tipos de evento. Un visor desconectado simplemente pierde el evento.
type Notifier interface {
	Publish(event string, payload any)
}

// NopNotifier descarta los eventos (CLI de seed, tests).
type NopNotifier struct{}

// Publish no hace nada.
func (NopNotifier) Publish(string, any) {}
