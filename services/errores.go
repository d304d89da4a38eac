// Package services contiene las reglas de validación y la orquestación
// de cada caso de uso. Las reglas se evalúan en orden fijo (existencia,
// formato, conflicto, precondición de estado) y ninguna falla deja
// mutaciones parciales.
package services

import (
	"errors"
	"fmt"
	"log"
)

// Clase clasifica un rechazo de validación.
type Clase int

const (
	NoEncontrado Clase = iota // la referencia no resuelve a una fila
	Conflicto                 // colisión de unicidad o de horario
	Precondicion              // el estado no es el requerido
	Malformado                // entrada no interpretable
	Interno                   // fallo inesperado del almacén
)

// ErrorValidacion es el rechazo estructurado que devuelven los
// servicios: una clase y un mensaje legible. Nunca se rechaza en
// silencio.
type ErrorValidacion struct {
	Clase   Clase
	Mensaje string
}

func (e *ErrorValidacion) Error() string { return e.Mensaje }

// ErrCredencialesInvalidas señala un intento de inicio de sesión con
// email o contraseña incorrectos.
var ErrCredencialesInvalidas = errors.New("credenciales incorrectas")

func noEncontrado(mensaje string) error {
	return &ErrorValidacion{Clase: NoEncontrado, Mensaje: mensaje}
}

func conflicto(mensaje string) error {
	return &ErrorValidacion{Clase: Conflicto, Mensaje: mensaje}
}

func precondicion(mensaje string) error {
	return &ErrorValidacion{Clase: Precondicion, Mensaje: mensaje}
}

func malformado(mensaje string) error {
	return &ErrorValidacion{Clase: Malformado, Mensaje: mensaje}
}

// interno registra el error real del almacén y devuelve un rechazo
// genérico; el detalle de la base de datos no llega al cliente.
func interno(err error) error {
	log.Printf("Error interno del almacén: %v", err)
	return &ErrorValidacion{Clase: Interno, Mensaje: "Error interno del servidor"}
}

// Clasificar extrae la clase de un error de servicio. El segundo valor
// es false cuando el error no es un ErrorValidacion.
func Clasificar(err error) (Clase, bool) {
	var ev *ErrorValidacion
	if errors.As(err, &ev) {
		return ev.Clase, true
	}
	return 0, false
}

// envolverInterno convierte cualquier error que no sea ya un
// ErrorValidacion en un rechazo interno.
func envolverInterno(err error) error {
	if err == nil {
		return nil
	}
	var ev *ErrorValidacion
	if errors.As(err, &ev) {
		return err
	}
	return interno(fmt.Errorf("operación abortada: %w", err))
}
