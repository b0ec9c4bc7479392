// Package notify implementa el canal de notificaciones del panel: un único
// slot de toast que se auto-descarta tras un TTL fijo.
package notify

import (
	"sync"
	"time"
)

// Severity severidad del toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification un toast visible.
type Notification struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	ShownAt  time.Time `json:"shown_at"`
}

// Channel cola de un solo slot: Show reemplaza el toast vigente y reinicia el
// temporizador; pasado el TTL sin más llamadas el slot se limpia solo.
type Channel struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	gen     uint64 // invalida temporizadores de toasts ya reemplazados
}

// NewChannel construye el canal con el TTL indicado.
func NewChannel(ttl time.Duration) *Channel {
	return &Channel{ttl: ttl}
}

// Show publica un toast, descartando el anterior si lo hubiera.
func (c *Channel) Show(message string, severity Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	gen := c.gen
	c.current = &Notification{Message: message, Severity: severity, ShownAt: time.Now()}
	time.AfterFunc(c.ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.current = nil
		}
	})
}

// Success publica un toast de éxito.
func (c *Channel) Success(message string) { c.Show(message, SeveritySuccess) }

// Current devuelve el toast vigente o nil si el slot está vacío.
func (c *Channel) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	n := *c.current
	return &n
}
