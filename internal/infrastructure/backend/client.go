// Package backend implementa el cliente del API REST de SmartStock. Agrupa
// las operaciones por recurso (clientes, productos, contratos, pedidos,
// alertas, envíos, repartidores, tickets, inventario, validación) y registra
// cada petición y respuesta en el log estructurado.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartstock/panel-api/internal/domain"
)

// Config opciones del cliente.
type Config struct {
	BaseURL      string        // ej. http://localhost:3001/api
	Timeout      time.Duration // timeout por petición
	ProbeTimeout time.Duration // timeout del probe de conectividad
}

// Client cliente HTTP base contra el backend. Las agrupaciones por recurso
// (ClientesAPI, PedidosAPI, ...) se construyen sobre este cliente.
type Client struct {
	base         string
	probeTimeout time.Duration
	httpClient   *http.Client
	log          zerolog.Logger
}

// New construye el cliente con el timeout de red configurado.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}
	return &Client{
		base:         strings.TrimRight(cfg.BaseURL, "/"),
		probeTimeout: probeTimeout,
		httpClient:   &http.Client{Timeout: timeout},
		log:          log,
	}
}

// APIError error de negocio reportado por el backend (status no-2xx con
// cuerpo JSON). Se distingue de los fallos de transporte, que se envuelven
// en domain.ErrBackendUnavailable.
type APIError struct {
	Status  int
	Mensaje string
	Cuerpo  []byte // cuerpo crudo, por si el llamador necesita el detalle
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Mensaje)
}

// cuerpoError formas de error que devuelve el backend.
type cuerpoError struct {
	Error   string `json:"error"`
	Mensaje string `json:"mensaje"`
	Message string `json:"message"`
}

func (b cuerpoError) texto() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Mensaje != "":
		return b.Mensaje
	case b.Message != "":
		return b.Message
	default:
		return "error desconocido"
	}
}

// Ping emite una verificación de vida contra /clientes con el timeout corto
// de probe. Cualquier fallo se reporta como desconexión.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	return c.getJSON(ctx, "/clientes", nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	data, err := c.doRaw(ctx, method, path, reader, "application/json")
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// doRaw ejecuta la petición, registra request/response y devuelve el cuerpo.
// Un status no-2xx se convierte en *APIError; un fallo de red en
// domain.ErrBackendUnavailable.
func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("construir petición %s %s: %w", method, path, err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("petición al backend")
	inicio := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("fallo de transporte")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta de %s: %v", domain.ErrBackendUnavailable, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duracion", time.Since(inicio)).
		Msg("respuesta del backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var cuerpo cuerpoError
		_ = json.Unmarshal(data, &cuerpo)
		return nil, &APIError{Status: resp.StatusCode, Mensaje: cuerpo.texto(), Cuerpo: data}
	}
	return data, nil
}
