// Package reparto contiene la asignación rotativa de repartidores para la
// creación masiva de envíos (servicio de dominio, sin I/O).
package reparto

import "github.com/smartstock/panel-api/internal/domain/entity"

// Asignar devuelve el repartidor que corresponde al envío número `exitosos`
// dentro del pool disponible. El cursor avanza con los envíos exitosos y
// envuelve con módulo sobre el tamaño del pool. Con pool vacío no hay
// asignación posible y el segundo valor es false.
func Asignar(pool []entity.Repartidor, exitosos int) (entity.Repartidor, bool) {
	if len(pool) == 0 {
		return entity.Repartidor{}, false
	}
	if exitosos < 0 {
		exitosos = 0
	}
	return pool[exitosos%len(pool)], true
}
