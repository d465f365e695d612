// Package logger configura el logging estructurado del panel: consola
// legible en desarrollo, JSON por stdout en cualquier otro entorno.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config salida y verbosidad del proceso.
type Config struct {
	Env   string // "development" activa la consola legible
	Level string // debug, info, warn, error; no reconocido cae en info
}

// Logger fachada fina sobre zerolog que se inyecta en los casos de uso.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger del proceso según el entorno.
func New(cfg Config) *Logger {
	var zl zerolog.Logger
	if strings.EqualFold(cfg.Env, "development") {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	} else {
		zl = zerolog.New(os.Stdout)
	}

	nivel, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}

	return &Logger{zl: zl.Level(nivel).With().Timestamp().Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Componente devuelve un sublogger de zerolog etiquetado con el componente,
// para las piezas de infraestructura que usan la API de zerolog directa.
func (l *Logger) Componente(nombre string) zerolog.Logger {
	return l.zl.With().Str("componente", nombre).Logger()
}
