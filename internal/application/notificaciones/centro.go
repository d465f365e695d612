// Package notificaciones implementa la cola de avisos transitorios del
// panel. Cada entrada expira sola según su duración; el descarte de una no
// afecta los timers de las demás.
package notificaciones

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tipo severidad de la notificación.
type Tipo string

const (
	TipoExito       Tipo = "exito"
	TipoError       Tipo = "error"
	TipoAdvertencia Tipo = "advertencia"
	TipoInfo        Tipo = "info"
)

// Duraciones por defecto según severidad.
const (
	DuracionExito       = 3 * time.Second
	DuracionError       = 8 * time.Second
	DuracionAdvertencia = 5 * time.Second
	DuracionInfo        = 4 * time.Second
)

// Notificacion aviso visible con identificador único.
type Notificacion struct {
	ID       string    `json:"id"`
	Mensaje  string    `json:"mensaje"`
	Tipo     Tipo      `json:"tipo"`
	CreadaEn time.Time `json:"creada_en"`
}

type entrada struct {
	notificacion Notificacion
	timer        *time.Timer // nil cuando la duración es 0 (persistente)
}

// Centro cola de notificaciones de ámbito de proceso. Se crea al arrancar la
// aplicación y vive lo que viva el proceso. Seguro para uso concurrente.
type Centro struct {
	mu    sync.Mutex
	items map[string]*entrada
	orden []string // ids en orden de publicación
}

// NewCentro construye el centro vacío.
func NewCentro() *Centro {
	return &Centro{items: make(map[string]*entrada)}
}

// Publicar encola un aviso y devuelve su id. Con duracion > 0 la entrada se
// elimina sola al vencer; con duracion 0 persiste hasta descartarla.
func (c *Centro) Publicar(mensaje string, tipo Tipo, duracion time.Duration) string {
	id := uuid.New().String()
	n := Notificacion{ID: id, Mensaje: mensaje, Tipo: tipo, CreadaEn: time.Now()}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entrada{notificacion: n}
	if duracion > 0 {
		e.timer = time.AfterFunc(duracion, func() { c.Descartar(id) })
	}
	c.items[id] = e
	c.orden = append(c.orden, id)
	return id
}

// Exito publica con la duración por defecto de éxito (3s).
func (c *Centro) Exito(mensaje string) string {
	return c.Publicar(mensaje, TipoExito, DuracionExito)
}

// Error publica con la duración por defecto de error (8s).
func (c *Centro) Error(mensaje string) string {
	return c.Publicar(mensaje, TipoError, DuracionError)
}

// Advertencia publica con la duración por defecto de advertencia (5s).
func (c *Centro) Advertencia(mensaje string) string {
	return c.Publicar(mensaje, TipoAdvertencia, DuracionAdvertencia)
}

// Info publica con la duración por defecto informativa (4s).
func (c *Centro) Info(mensaje string) string {
	return c.Publicar(mensaje, TipoInfo, DuracionInfo)
}

// Descartar elimina una entrada por id. Devuelve false si ya no existe.
func (c *Centro) Descartar(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[id]
	if !ok {
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(c.items, id)
	for i, v := range c.orden {
		if v == id {
			c.orden = append(c.orden[:i], c.orden[i+1:]...)
			break
		}
	}
	return true
}

// Activas devuelve las notificaciones vigentes en orden de publicación.
func (c *Centro) Activas() []Notificacion {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notificacion, 0, len(c.orden))
	for _, id := range c.orden {
		if e, ok := c.items[id]; ok {
			out = append(out, e.notificacion)
		}
	}
	return out
}
