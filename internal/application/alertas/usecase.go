// Package alertas expone las alertas de stock del backend con conteos por
// severidad para el panel.
package alertas

import (
	"context"

	"github.com/smartstock/panel-api/internal/domain/entity"
)

// API puerto hacia el recurso /alertas del backend.
type API interface {
	Listar(ctx context.Context) ([]entity.Alerta, error)
	NoResueltas(ctx context.Context) ([]entity.Alerta, error)
	Resolver(ctx context.Context, id int) error
	Generar(ctx context.Context) ([]entity.Alerta, error)
}

// Notificador puerto hacia el centro de notificaciones.
type Notificador interface {
	Exito(mensaje string) string
	Advertencia(mensaje string) string
}

// ConteoSeveridades alertas agrupadas por severidad.
type ConteoSeveridades struct {
	Critico int `json:"critico"`
	Alto    int `json:"alto"`
	Medio   int `json:"medio"`
	Bajo    int `json:"bajo"`
}

// Tablero alertas con su desglose por severidad.
type Tablero struct {
	Alertas []entity.Alerta   `json:"alertas"`
	Conteo  ConteoSeveridades `json:"conteo"`
	SinLeer int               `json:"sin_leer"`
}

// UseCase gestión de alertas de stock.
type UseCase struct {
	api API
	ntf Notificador
}

// NewUseCase construye el caso de uso.
func NewUseCase(api API, ntf Notificador) *UseCase {
	return &UseCase{api: api, ntf: ntf}
}

// Listar arma el tablero de alertas. Con soloPendientes se consultan
// únicamente las no resueltas.
func (uc *UseCase) Listar(ctx context.Context, soloPendientes bool) (*Tablero, error) {
	var (
		alertas []entity.Alerta
		err     error
	)
	if soloPendientes {
		alertas, err = uc.api.NoResueltas(ctx)
	} else {
		alertas, err = uc.api.Listar(ctx)
	}
	if err != nil {
		return nil, err
	}

	t := &Tablero{Alertas: alertas}
	for _, a := range alertas {
		if !a.Resuelta {
			t.SinLeer++
		}
		switch a.Severidad {
		case entity.SeveridadCritico:
			t.Conteo.Critico++
		case entity.SeveridadAlto:
			t.Conteo.Alto++
		case entity.SeveridadMedio:
			t.Conteo.Medio++
		case entity.SeveridadBajo:
			t.Conteo.Bajo++
		}
	}
	return t, nil
}

// Resolver marca una alerta como atendida y lo notifica.
func (uc *UseCase) Resolver(ctx context.Context, id int) error {
	if err := uc.api.Resolver(ctx, id); err != nil {
		return err
	}
	uc.ntf.Exito("Alerta marcada como resuelta")
	return nil
}

// Generar pide al backend recalcular alertas y avisa cuántas nuevas hay.
func (uc *UseCase) Generar(ctx context.Context) ([]entity.Alerta, error) {
	alertas, err := uc.api.Generar(ctx)
	if err != nil {
		return nil, err
	}
	if len(alertas) > 0 {
		uc.ntf.Advertencia("Se generaron nuevas alertas de stock")
	}
	return alertas, nil
}
