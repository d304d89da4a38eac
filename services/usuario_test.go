package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"revtec/models"
)

func TestCrearUsuarioCedulaOEmailDuplicado(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("cedula = ").WillReturnRows(filaExiste(true))

	_, err := s.CrearUsuario(context.Background(), models.UsuarioCreate{
		Nombre: "Laura", Apellidos: "Mora",
		Cedula: "1-1111-1111", Email: "laura@example.com",
		TipoUsuario: "cliente", Password: "secreta",
	})
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

func TestObtenerUsuarioInactivoNoSeExpone(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("FROM usuarios WHERE id_usuario").WillReturnRows(filaUsuario(7, "cliente", "inactivo"))

	_, err := s.ObtenerUsuario(context.Background(), 7)
	exigirClase(t, err, NoEncontrado)
	verificarExpectativas(t, mock)
}

// Un usuario con vehículos o inspecciones se desactiva en lugar de
// borrarse.
func TestEliminarUsuarioConDependenciasDesactiva(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM usuarios WHERE id_usuario").WillReturnRows(filaUsuario(7, "cliente", "activo"))
	mock.ExpectQuery("id_propietario").WillReturnRows(filaExiste(true))
	mock.ExpectExec("estado = 'inactivo'").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.EliminarUsuario(context.Background(), 7); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	verificarExpectativas(t, mock)
}

func TestEliminarUsuarioSinDependenciasBorra(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM usuarios WHERE id_usuario").WillReturnRows(filaUsuario(7, "cliente", "activo"))
	mock.ExpectQuery("id_propietario").WillReturnRows(filaExiste(false))
	mock.ExpectExec("DELETE FROM usuarios").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.EliminarUsuario(context.Background(), 7); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	verificarExpectativas(t, mock)
}

func TestSaludIncluyeConteosYMarca(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("COUNT").WillReturnRows(
		sqlmock.NewRows([]string{"total", "activos"}).AddRow(12, 9))

	estado, err := s.Salud(context.Background())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if estado["estado"] != "ok" {
		t.Errorf("estado = %v", estado["estado"])
	}
	if estado["usuarios"] != 12 || estado["usuarios_activos"] != 9 {
		t.Errorf("conteos = %v / %v", estado["usuarios"], estado["usuarios_activos"])
	}
	marca, ok := estado["timestamp"].(time.Time)
	if !ok || !marca.Equal(relojFijo) {
		t.Errorf("timestamp = %v, se esperaba el reloj del servicio", estado["timestamp"])
	}
	verificarExpectativas(t, mock)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("AND password").WillReturnError(sql.ErrNoRows)

	_, err := s.Login(context.Background(), models.UsuarioLogin{
		Email:    "laura@example.com",
		Password: "incorrecta",
	})
	if !errors.Is(err, ErrCredencialesInvalidas) {
		t.Fatalf("error = %v, se esperaba ErrCredencialesInvalidas", err)
	}
	verificarExpectativas(t, mock)
}

func TestLoginExitosoNormalizaElEmail(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectQuery("AND password").
		WithArgs("laura@example.com", "secreta").
		WillReturnRows(filaUsuario(7, "cliente", "activo"))

	usuario, err := s.Login(context.Background(), models.UsuarioLogin{
		Email:    "  LAURA@example.com ",
		Password: "secreta",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if usuario.IDUsuario != 7 {
		t.Errorf("id = %d", usuario.IDUsuario)
	}
	verificarExpectativas(t, mock)
}
