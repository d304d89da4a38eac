package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"revtec/store"
)

// relojFijo es el instante que usan todas las pruebas del servicio.
var relojFijo = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func nuevoServicioDePrueba(t *testing.T) (*Servicio, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error al crear el mock de la base de datos: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	s := NuevoServicio(store.NuevoAlmacen(db)).ConReloj(func() time.Time { return relojFijo })
	return s, mock
}

func verificarExpectativas(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectativas sin cumplir: %v", err)
	}
}

func exigirClase(t *testing.T, err error, esperada Clase) {
	t.Helper()
	if err == nil {
		t.Fatal("se esperaba un error y no hubo ninguno")
	}
	clase, ok := Clasificar(err)
	if !ok {
		t.Fatalf("el error no es un ErrorValidacion: %v", err)
	}
	if clase != esperada {
		t.Fatalf("clase = %d, se esperaba %d (error: %v)", clase, esperada, err)
	}
}

func filaExiste(valor bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(valor)
}

func TestNormalizarHora(t *testing.T) {
	hora, err := normalizarHora("08:30:00")
	if err != nil {
		t.Fatalf("hora válida rechazada: %v", err)
	}
	if hora != "08:30:00" {
		t.Errorf("hora = %q, se esperaba 08:30:00", hora)
	}

	for _, invalida := range []string{"8:30", "25:00:00", "mediodía", ""} {
		if _, err := normalizarHora(invalida); err == nil {
			t.Errorf("hora %q aceptada, se esperaba rechazo", invalida)
		} else {
			exigirClase(t, err, Malformado)
		}
	}
}

func TestInterpretarFecha(t *testing.T) {
	fecha, err := interpretarFecha("2026-03-15", "fecha")
	if err != nil {
		t.Fatalf("fecha válida rechazada: %v", err)
	}
	if !fecha.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("fecha interpretada = %v", fecha)
	}

	if _, err := interpretarFecha("15/03/2026", "fecha"); err == nil {
		t.Error("fecha con formato incorrecto aceptada")
	}
}

func TestEnvolverInterno(t *testing.T) {
	if envolverInterno(nil) != nil {
		t.Error("nil debe seguir siendo nil")
	}

	rechazo := conflicto("ocupado")
	if envolverInterno(rechazo) != rechazo {
		t.Error("un ErrorValidacion no debe reenvolverse")
	}

	clase, ok := Clasificar(envolverInterno(sql.ErrConnDone))
	if !ok || clase != Interno {
		t.Error("un error ajeno debe clasificarse como interno")
	}
}
