package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// ValidacionAPI grupo de operaciones del recurso /validacion: plantilla de
// nómina y validación del archivo subido.
type ValidacionAPI struct {
	c *Client
}

// NewValidacionAPI construye el grupo.
func NewValidacionAPI(c *Client) *ValidacionAPI { return &ValidacionAPI{c: c} }

// Plantilla descarga la plantilla CSV de nómina de empleados.
func (a *ValidacionAPI) Plantilla(ctx context.Context) ([]byte, error) {
	return a.c.doRaw(ctx, http.MethodGet, "/validacion/plantilla", nil, "")
}

// ValidarNomina envía el CSV junto con el cliente y la cantidad de tarjetas
// solicitadas como multipart/form-data y devuelve el veredicto del backend.
// Un rechazo de negocio (status 4xx con detalle) se devuelve como resultado,
// no como error.
func (a *ValidacionAPI) ValidarNomina(ctx context.Context, archivo []byte, nombre string, clienteID, cantidad int) (*entity.ResultadoNomina, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	parte, err := w.CreateFormFile("archivo", nombre)
	if err != nil {
		return nil, fmt.Errorf("armar multipart: %w", err)
	}
	if _, err := parte.Write(archivo); err != nil {
		return nil, fmt.Errorf("escribir archivo en multipart: %w", err)
	}
	if err := w.WriteField("clienteId", strconv.Itoa(clienteID)); err != nil {
		return nil, err
	}
	if err := w.WriteField("cantidadTarjetasSolicitadas", strconv.Itoa(cantidad)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	data, err := a.c.doRaw(ctx, http.MethodPost, "/validacion/nomina", &buf, w.FormDataContentType())
	if err != nil {
		// El backend responde 400 con el mismo shape ResultadoNomina cuando
		// la nómina no cubre el mínimo; eso es un veredicto, no un fallo.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest && len(apiErr.Cuerpo) > 0 {
			var out entity.ResultadoNomina
			if jsonErr := json.Unmarshal(apiErr.Cuerpo, &out); jsonErr == nil {
				return &out, nil
			}
		}
		return nil, err
	}

	var out entity.ResultadoNomina
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decodificar veredicto de nómina: %w", err)
	}
	return &out, nil
}
