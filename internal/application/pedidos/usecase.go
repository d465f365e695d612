// Package pedidos implementa el flujo de solicitud de pedidos en dos fases:
// validar cada línea contra su contrato y después crear solo las aprobadas,
// acumulando éxitos y fallos por separado.
package pedidos

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/smartstock/panel-api/internal/domain"
	"github.com/smartstock/panel-api/internal/domain/entity"
)

// API puerto hacia el recurso /pedidos del backend.
type API interface {
	Validar(ctx context.Context, contratoID, cantidad int) (*entity.VerdictoValidacion, error)
	Crear(ctx context.Context, in entity.NuevoPedido) (*entity.Pedido, error)
	Listar(ctx context.Context) ([]entity.Pedido, error)
	Aprobar(ctx context.Context, id int, usuario string) error
	Rechazar(ctx context.Context, id int, razon string) error
}

// Notificador puerto hacia el centro de notificaciones.
type Notificador interface {
	Exito(mensaje string) string
	Error(mensaje string) string
}

// EstadoLinea estado de una línea dentro del flujo validar-luego-crear.
type EstadoLinea string

const (
	LineaSinValidar EstadoLinea = "sin_validar"
	LineaAprobada   EstadoLinea = "aprobada"
	LineaRechazada  EstadoLinea = "rechazada"
	LineaEnviada    EstadoLinea = "enviada"
	LineaFalloEnvio EstadoLinea = "fallo_envio"
)

// Linea un (producto, cantidad) seleccionado contra un contrato. El estado
// avanza SinValidar -> Aprobada | Rechazada -> Enviada | FalloEnvio.
type Linea struct {
	ContratoID int
	ClienteID  int
	ProductoID int
	Cantidad   int

	Estado     EstadoLinea
	Verdicto   *entity.VerdictoValidacion
	ErrorEnvio string
}

// Resultado conteo acumulado de una confirmación por lotes.
type Resultado struct {
	Exitosos int `json:"exitosos"`
	Fallidos int `json:"fallidos"`
}

// UseCase flujo de pedidos.
type UseCase struct {
	api API
	ntf Notificador
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, ntf Notificador) *UseCase {
	return &UseCase{api: api, ntf: ntf}
}

// RFC de 12 (persona moral) o 13 (persona física) caracteres.
var reRFC = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

// FormatoRFCValido chequeo local del RFC antes de confirmar.
func FormatoRFCValido(rfc string) bool {
	rfc = strings.ToUpper(strings.TrimSpace(rfc))
	if len(rfc) != 12 && len(rfc) != 13 {
		return false
	}
	return reRFC.MatchString(rfc)
}

// ValidarLinea ejecuta el pre-chequeo de una línea. La cantidad debe ser
// mayor a cero; un fallo de entrada se reporta sin tocar el backend. El
// veredicto del backend (aprobado o rechazado, con razón y tarjetas
// permitidas) queda almacenado en la línea.
func (uc *UseCase) ValidarLinea(ctx context.Context, linea *Linea) error {
	if linea.Cantidad <= 0 {
		linea.Estado = LineaSinValidar
		return fmt.Errorf("%w: la cantidad debe ser un número mayor a 0", domain.ErrInvalidInput)
	}
	if linea.ContratoID <= 0 {
		linea.Estado = LineaSinValidar
		return fmt.Errorf("%w: no se encontró información del contrato", domain.ErrInvalidInput)
	}

	verdicto, err := uc.api.Validar(ctx, linea.ContratoID, linea.Cantidad)
	if err != nil {
		return err
	}
	linea.Verdicto = verdicto
	if verdicto.PuedeAprobar {
		linea.Estado = LineaAprobada
	} else {
		linea.Estado = LineaRechazada
	}
	return nil
}

// Confirmar crea los pedidos de las líneas aprobadas, en el orden recibido y
// de forma estrictamente secuencial. Un fallo individual no aborta el lote:
// se cuenta y se continúa con la siguiente línea, así que sobre K líneas
// aprobadas siempre se cumple exitosos + fallidos = K. Al final publica una
// notificación agregada de éxitos y, solo si hubo, una de fallos.
func (uc *UseCase) Confirmar(ctx context.Context, rfc string, lineas []*Linea) (Resultado, error) {
	rfc = strings.ToUpper(strings.TrimSpace(rfc))
	if !FormatoRFCValido(rfc) {
		return Resultado{}, fmt.Errorf("%w: se requiere un RFC válido para cerrar el contrato", domain.ErrInvalidInput)
	}

	aprobadas := make([]*Linea, 0, len(lineas))
	for _, l := range lineas {
		if l.Estado == LineaAprobada {
			aprobadas = append(aprobadas, l)
		}
	}
	if len(aprobadas) == 0 {
		return Resultado{}, fmt.Errorf("%w: no hay pedidos aprobados para confirmar", domain.ErrInvalidInput)
	}

	var res Resultado
	for _, l := range aprobadas {
		_, err := uc.api.Crear(ctx, entity.NuevoPedido{
			ContratoID: l.ContratoID,
			ClienteID:  l.ClienteID,
			ProductoID: l.ProductoID,
			Cantidad:   l.Cantidad,
			RFC:        rfc,
		})
		if err != nil {
			l.Estado = LineaFalloEnvio
			l.ErrorEnvio = err.Error()
			res.Fallidos++
			continue
		}
		l.Estado = LineaEnviada
		res.Exitosos++
	}

	if res.Exitosos > 0 {
		uc.ntf.Exito(fmt.Sprintf("%d pedido(s) creado(s) exitosamente con RFC: %s", res.Exitosos, rfc))
	}
	if res.Fallidos > 0 {
		uc.ntf.Error(fmt.Sprintf("%d pedido(s) fallaron", res.Fallidos))
	}
	return res, nil
}

// Conteos pedidos por estado para las tarjetas del listado.
type Conteos struct {
	Pendientes int `json:"pendientes"`
	Aprobados  int `json:"aprobados"`
	Rechazados int `json:"rechazados"`
}

// Listado pedidos más sus conteos por estado.
type Listado struct {
	Pedidos []entity.Pedido `json:"pedidos"`
	Conteos Conteos         `json:"conteos"`
}

// Listar devuelve todos los pedidos con conteos por estado.
func (uc *UseCase) Listar(ctx context.Context) (*Listado, error) {
	pedidos, err := uc.api.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := &Listado{Pedidos: pedidos}
	for _, p := range pedidos {
		switch p.Estado {
		case entity.PedidoPendiente:
			out.Conteos.Pendientes++
		case entity.PedidoAprobado:
			out.Conteos.Aprobados++
		case entity.PedidoRechazado:
			out.Conteos.Rechazados++
		}
	}
	return out, nil
}

// Aprobar delega la transición al backend.
func (uc *UseCase) Aprobar(ctx context.Context, id int, usuario string) error {
	return uc.api.Aprobar(ctx, id, usuario)
}

// Rechazar delega la transición al backend. La razón es obligatoria.
func (uc *UseCase) Rechazar(ctx context.Context, id int, razon string) error {
	if strings.TrimSpace(razon) == "" {
		return fmt.Errorf("%w: la razón de rechazo es requerida", domain.ErrInvalidInput)
	}
	return uc.api.Rechazar(ctx, id, razon)
}
