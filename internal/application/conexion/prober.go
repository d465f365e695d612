// Package conexion mantiene el indicador "sistema en línea" del panel a
// partir de probes periódicos contra el backend.
package conexion

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Probe función de verificación de vida; cualquier error cuenta como
// desconexión.
type Probe func(ctx context.Context) error

// Estado instantánea del verificador.
type Estado struct {
	Conectado          bool       `json:"conectado"`
	UltimaVerificacion *time.Time `json:"ultima_verificacion,omitempty"`
	Error              string     `json:"error,omitempty"`
}

// Prober ejecuta un probe inmediato al iniciar y luego re-verifica con una
// cadencia fija. Su ciclo de vida está atado al de la aplicación: Iniciar
// lanza la goroutine y Detener la libera; no hay reintentos ni backoff más
// allá de la cadencia.
type Prober struct {
	probe    Probe
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	estado Estado

	cancel context.CancelFunc
	done   chan struct{}
}

// NewProber construye el verificador. interval <= 0 usa 30 segundos.
func NewProber(probe Probe, interval time.Duration, log zerolog.Logger) *Prober {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Prober{
		probe:    probe,
		interval: interval,
		log:      log,
	}
}

// Iniciar lanza la goroutine de verificación: un probe inmediato y después
// uno por tick. Llamar Iniciar dos veces sin Detener es un error de uso.
func (p *Prober) Iniciar() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		p.verificar(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.verificar(ctx)
			}
		}
	}()
}

// Detener cancela la goroutine y espera su salida. Idempotente.
func (p *Prober) Detener() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
}

// VerificarAhora fuerza un probe fuera de la cadencia (acción de refresco
// manual) y devuelve el estado resultante.
func (p *Prober) VerificarAhora(ctx context.Context) Estado {
	p.verificar(ctx)
	return p.Estado()
}

// Estado devuelve la instantánea actual.
func (p *Prober) Estado() Estado {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.estado
}

func (p *Prober) verificar(ctx context.Context) {
	err := p.probe(ctx)
	ahora := time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	anterior := p.estado.Conectado
	p.estado = Estado{Conectado: err == nil, UltimaVerificacion: &ahora}
	if err != nil {
		p.estado.Error = err.Error()
	}

	if anterior != p.estado.Conectado {
		if p.estado.Conectado {
			p.log.Info().Msg("conexión con el backend restablecida")
		} else {
			p.log.Warn().Err(err).Msg("backend sin conexión")
		}
	}
}
