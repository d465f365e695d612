// Package validacion implementa la validación de nóminas de empleados: un
// pre-chequeo local del CSV antes de enviarlo al backend, para rechazar de
// inmediato los archivos que no cubren el mínimo sin gastar una ida completa.
package validacion

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

// RFC de empleado: persona moral (12) o física (13).
var reRFC = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

// API puerto hacia el recurso /validacion del backend.
type API interface {
	ValidarNomina(ctx context.Context, archivo []byte, nombre string, clienteID, cantidad int) (*entity.ResultadoNomina, error)
	Plantilla(ctx context.Context) ([]byte, error)
}

// UseCase validación de nóminas.
type UseCase struct {
	api API
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API) *UseCase {
	return &UseCase{api: api}
}

// MinimoRequerido = ceil(cantidad * 0.9): la nómina debe cubrir al menos el
// 90% de las tarjetas solicitadas con empleados válidos.
func MinimoRequerido(cantidad int) int {
	return (cantidad*9 + 9) / 10
}

// Validar corre el pre-chequeo local y, si el archivo lo supera, reenvía la
// nómina al backend para el veredicto definitivo. Un rechazo local produce un
// ResultadoNomina con el desglose, igual que el rechazo del backend.
func (uc *UseCase) Validar(ctx context.Context, archivo []byte, nombre string, clienteID, cantidad int) (*entity.ResultadoNomina, error) {
	if clienteID <= 0 {
		return nil, fmt.Errorf("%w: selecciona un cliente", domain.ErrInvalidInput)
	}
	if cantidad <= 0 {
		return nil, fmt.Errorf("%w: la cantidad de tarjetas debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if strings.ToLower(filepath.Ext(nombre)) != ".csv" {
		return nil, fmt.Errorf("%w: el archivo debe ser un CSV", domain.ErrInvalidInput)
	}

	validos, err := contarEmpleadosValidos(archivo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	minimo := MinimoRequerido(cantidad)
	if validos < minimo {
		porcentaje := 0.0
		if cantidad > 0 {
			porcentaje = float64(validos) / float64(cantidad) * 100
		}
		return &entity.ResultadoNomina{
			Success: false,
			Mensaje: fmt.Sprintf("La nómina no cubre el mínimo: se requieren %d empleados válidos y el archivo trae %d", minimo, validos),
			Detalle: &entity.DetalleNomina{
				TarjetasSolicitadas:         cantidad,
				MinimoEmpleadosRequerido:    minimo,
				EmpleadosValidosEncontrados: validos,
				Faltante:                    minimo - validos,
				PorcentajeCumplido:          porcentaje,
			},
		}, nil
	}

	return uc.api.ValidarNomina(ctx, archivo, nombre, clienteID, cantidad)
}

// Plantilla descarga la plantilla CSV de nómina.
func (uc *UseCase) Plantilla(ctx context.Context) ([]byte, error) {
	return uc.api.Plantilla(ctx)
}

// contarEmpleadosValidos parsea el CSV y cuenta las filas con RFC válido.
// Los archivos exportados desde hojas de cálculo en Windows llegan en
// Windows-1252; se transcodifican antes de parsear.
func contarEmpleadosValidos(archivo []byte) (validos int, err error) {
	if !utf8.Valid(archivo) {
		archivo, err = io.ReadAll(transform.NewReader(bytes.NewReader(archivo), charmap.Windows1252.NewDecoder()))
		if err != nil {
			return 0, fmt.Errorf("transcodificar archivo: %w", err)
		}
	}

	r := csv.NewReader(bytes.NewReader(archivo))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	filas, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parsear CSV: %w", err)
	}
	if len(filas) < 2 {
		return 0, fmt.Errorf("el archivo no trae filas de empleados")
	}

	colRFC := columnaRFC(filas[0])
	if colRFC < 0 {
		return 0, fmt.Errorf("el encabezado no trae una columna RFC")
	}

	for _, fila := range filas[1:] {
		if len(fila) <= colRFC {
			continue
		}
		rfc := strings.ToUpper(strings.TrimSpace(fila[colRFC]))
		if reRFC.MatchString(rfc) {
			validos++
		}
	}
	return validos, nil
}

func columnaRFC(encabezado []string) int {
	for i, campo := range encabezado {
		if strings.EqualFold(strings.TrimSpace(campo), "rfc") {
			return i
		}
	}
	return -1
}
