package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"revtec/models"
)

var columnasFilaCita = []string{"id_cita", "id_vehiculo", "id_estacion", "fecha_cita", "hora_cita",
	"estado_cita", "observaciones", "fecha_creacion", "numero_placa", "marca", "modelo", "nombre_estacion"}

func filaCita(id int, estado string) *sqlmock.Rows {
	return sqlmock.NewRows(columnasFilaCita).AddRow(id, 2, 3,
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "10:00:00", estado, "",
		relojFijo, "ABC123", "Toyota", "Corolla", "Estación Central")
}

func TestCrearCitaExitosa(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM vehiculos").WillReturnRows(filaExiste(true))
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id_estacion"}).AddRow(3))
	mock.ExpectQuery("estado_cita = 'programada'").WillReturnRows(filaExiste(false))
	mock.ExpectQuery("INSERT INTO citas").WillReturnRows(sqlmock.NewRows([]string{"id_cita"}).AddRow(7))
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(7, "programada"))
	mock.ExpectCommit()

	cita, err := s.CrearCita(context.Background(), models.CitaCreate{
		IDVehiculo: 2,
		IDEstacion: 3,
		FechaCita:  "2026-03-15",
		HoraCita:   "10:00:00",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if cita.IDCita != 7 {
		t.Errorf("id = %d, se esperaba 7", cita.IDCita)
	}
	if cita.FechaCita != "2026-03-15" {
		t.Errorf("fecha = %q", cita.FechaCita)
	}
	if cita.VehiculoInfo != "ABC123 - Toyota Corolla" {
		t.Errorf("vehiculo_info = %q", cita.VehiculoInfo)
	}
	if cita.EstacionInfo != "Estación Central" {
		t.Errorf("estacion_info = %q", cita.EstacionInfo)
	}
	verificarExpectativas(t, mock)
}

func TestCrearCitaConflictoDeHorario(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM vehiculos").WillReturnRows(filaExiste(true))
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id_estacion"}).AddRow(3))
	mock.ExpectQuery("estado_cita = 'programada'").WillReturnRows(filaExiste(true))
	mock.ExpectRollback()

	_, err := s.CrearCita(context.Background(), models.CitaCreate{
		IDVehiculo: 2,
		IDEstacion: 3,
		FechaCita:  "2026-03-15",
		HoraCita:   "10:00:00",
	})
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

func TestCrearCitaVehiculoInexistente(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM vehiculos").WillReturnRows(filaExiste(false))
	mock.ExpectRollback()

	_, err := s.CrearCita(context.Background(), models.CitaCreate{
		IDVehiculo: 99,
		IDEstacion: 3,
		FechaCita:  "2026-03-15",
		HoraCita:   "10:00:00",
	})
	exigirClase(t, err, NoEncontrado)
	verificarExpectativas(t, mock)
}

func TestCrearCitaHoraMalformada(t *testing.T) {
	s, _ := nuevoServicioDePrueba(t)

	_, err := s.CrearCita(context.Background(), models.CitaCreate{
		IDVehiculo: 2,
		IDEstacion: 3,
		FechaCita:  "2026-03-15",
		HoraCita:   "10:00",
	})
	exigirClase(t, err, Malformado)
}

// Reprogramar una cita a su mismo horario debe ser válido: la
// comprobación de conflicto excluye la propia cita.
func TestActualizarCitaExcluyeSuPropioHorario(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	fecha := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(5, "programada"))
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id_estacion"}).AddRow(3))
	mock.ExpectQuery("estado_cita = 'programada'").
		WithArgs(3, fecha, "10:00:00", 5).
		WillReturnRows(filaExiste(false))
	mock.ExpectExec("UPDATE citas").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(5, "programada"))
	mock.ExpectCommit()

	_, err := s.ActualizarCita(context.Background(), 5, models.CitaUpdate{
		FechaCita: "2026-03-15",
		HoraCita:  "10:00:00",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	verificarExpectativas(t, mock)
}

// Reprogramar hacia una franja que otra cita programada ya ocupa se
// rechaza; la exclusión solo cubre a la propia cita.
func TestActualizarCitaFranjaOcupadaPorOtra(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	fecha := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(5, "programada"))
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id_estacion"}).AddRow(3))
	mock.ExpectQuery("estado_cita = 'programada'").
		WithArgs(3, fecha, "10:00:00", 5).
		WillReturnRows(filaExiste(true))
	mock.ExpectRollback()

	_, err := s.ActualizarCita(context.Background(), 5, models.CitaUpdate{
		FechaCita: "2026-03-15",
		HoraCita:  "10:00:00",
	})
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

// Una cita con inspecciones no se borra: se cancela para conservar el
// historial.
func TestEliminarCitaConInspeccionesCancela(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(5, "programada"))
	mock.ExpectQuery("FROM inspecciones WHERE id_cita").WillReturnRows(filaExiste(true))
	mock.ExpectExec("estado_cita = 'cancelada'").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.EliminarCita(context.Background(), 5); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	verificarExpectativas(t, mock)
}

func TestEliminarCitaSinInspeccionesBorra(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(5, "programada"))
	mock.ExpectQuery("FROM inspecciones WHERE id_cita").WillReturnRows(filaExiste(false))
	mock.ExpectExec("DELETE FROM citas").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.EliminarCita(context.Background(), 5); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	verificarExpectativas(t, mock)
}

// Tras cancelar la cita que ocupaba la franja, una nueva reserva del
// mismo horario debe pasar: el conflicto solo cuenta citas programadas.
func TestCrearCitaSobreFranjaCancelada(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM vehiculos").WillReturnRows(filaExiste(true))
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id_estacion"}).AddRow(3))
	mock.ExpectQuery("estado_cita = 'programada'").WillReturnRows(filaExiste(false))
	mock.ExpectQuery("INSERT INTO citas").WillReturnRows(sqlmock.NewRows([]string{"id_cita"}).AddRow(8))
	mock.ExpectQuery("LEFT JOIN vehiculos").WillReturnRows(filaCita(8, "programada"))
	mock.ExpectCommit()

	cita, err := s.CrearCita(context.Background(), models.CitaCreate{
		IDVehiculo: 2,
		IDEstacion: 3,
		FechaCita:  "2026-03-15",
		HoraCita:   "10:00:00",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if cita.IDCita != 8 {
		t.Errorf("id = %d, se esperaba 8", cita.IDCita)
	}
	verificarExpectativas(t, mock)
}
