package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"revtec/models"
)

func TestCrearVehiculoPlacaDuplicada(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("FROM usuarios WHERE id_usuario").WillReturnRows(filaUsuario(7, "cliente", "activo"))
	mock.ExpectQuery("WHERE numero_placa").WithArgs("ABC123", 0).WillReturnRows(filaExiste(true))

	_, err := s.CrearVehiculo(context.Background(), models.VehiculoCreate{
		NumeroPlaca:   " abc123 ",
		IDPropietario: 7,
		Marca:         "Toyota",
		Modelo:        "Corolla",
		Anio:          2020,
	})
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

func TestCrearVehiculoPropietarioInexistente(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("FROM usuarios WHERE id_usuario").WillReturnError(sql.ErrNoRows)

	_, err := s.CrearVehiculo(context.Background(), models.VehiculoCreate{
		NumeroPlaca:   "XYZ789",
		IDPropietario: 99,
	})
	exigirClase(t, err, NoEncontrado)
	verificarExpectativas(t, mock)
}

func TestEliminarVehiculoConCitas(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("FROM vehiculos WHERE id_vehiculo").WillReturnRows(filaExiste(true))
	mock.ExpectQuery("FROM citas WHERE id_vehiculo").WillReturnRows(filaExiste(true))

	err := s.EliminarVehiculo(context.Background(), 2)
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

func TestEliminarVehiculoSinCitas(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("FROM vehiculos WHERE id_vehiculo").WillReturnRows(filaExiste(true))
	mock.ExpectQuery("FROM citas WHERE id_vehiculo").WillReturnRows(filaExiste(false))
	mock.ExpectExec("DELETE FROM vehiculos").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.EliminarVehiculo(context.Background(), 2); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	verificarExpectativas(t, mock)
}
