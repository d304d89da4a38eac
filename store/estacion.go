package store

import (
	"context"
	"database/sql"

	"revtec/models"
)

const columnasEstacion = `id_estacion, nombre_estacion, direccion, telefono, email, provincia, canton, distrito, horario_atencion, estado`

func escanearEstacion(fila interface{ Scan(...interface{}) error }) (models.Estacion, error) {
	var e models.Estacion
	err := fila.Scan(&e.IDEstacion, &e.NombreEstacion, &e.Direccion, &e.Telefono, &e.Email,
		&e.Provincia, &e.Canton, &e.Distrito, &e.HorarioAtencion, &e.Estado)
	return e, err
}

// InsertarEstacion registra una estación y devuelve su identificador.
func (a *Almacen) InsertarEstacion(ctx context.Context, e models.Estacion) (int, error) {
	query := `INSERT INTO estaciones (nombre_estacion, direccion, telefono, email, provincia, canton, distrito, horario_atencion, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id_estacion`
	var id int
	err := a.ej.QueryRowContext(ctx, query, e.NombreEstacion, e.Direccion, e.Telefono, e.Email,
		e.Provincia, e.Canton, e.Distrito, e.HorarioAtencion, e.Estado).Scan(&id)
	return id, err
}

// ObtenerEstacion devuelve la estación por id, o ErrNoRows.
func (a *Almacen) ObtenerEstacion(ctx context.Context, id int) (models.Estacion, error) {
	query := `SELECT ` + columnasEstacion + ` FROM estaciones WHERE id_estacion = $1`
	return escanearEstacion(a.ej.QueryRowContext(ctx, query, id))
}

// ListarEstaciones devuelve todas las estaciones.
func (a *Almacen) ListarEstaciones(ctx context.Context) ([]models.Estacion, error) {
	query := `SELECT ` + columnasEstacion + ` FROM estaciones ORDER BY id_estacion`
	rows, err := a.ej.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var estaciones []models.Estacion
	for rows.Next() {
		e, err := escanearEstacion(rows)
		if err != nil {
			return nil, err
		}
		estaciones = append(estaciones, e)
	}
	return estaciones, rows.Err()
}

// ActualizarEstacion modifica todos los campos de la estación.
func (a *Almacen) ActualizarEstacion(ctx context.Context, e models.Estacion) error {
	query := `UPDATE estaciones SET nombre_estacion = $1, direccion = $2, telefono = $3, email = $4,
		provincia = $5, canton = $6, distrito = $7, horario_atencion = $8, estado = $9
		WHERE id_estacion = $10`
	_, err := a.ej.ExecContext(ctx, query, e.NombreEstacion, e.Direccion, e.Telefono, e.Email,
		e.Provincia, e.Canton, e.Distrito, e.HorarioAtencion, e.Estado, e.IDEstacion)
	return err
}

// ExisteEstacion indica si la estación está registrada.
func (a *Almacen) ExisteEstacion(ctx context.Context, id int) (bool, error) {
	var existe bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM estaciones WHERE id_estacion = $1)`, id).Scan(&existe)
	return existe, err
}

// EliminarEstacion borra la estación.
func (a *Almacen) EliminarEstacion(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `DELETE FROM estaciones WHERE id_estacion = $1`, id)
	return err
}

// BloquearEstacion toma el bloqueo de fila de la estación dentro de la
// transacción actual. Garantiza un solo ganador por franja cuando dos
// solicitudes compiten por la misma cita. Devuelve false si la
// estación no existe.
func (a *Almacen) BloquearEstacion(ctx context.Context, id int) (bool, error) {
	var existente int
	err := a.ej.QueryRowContext(ctx, `SELECT id_estacion FROM estaciones WHERE id_estacion = $1 FOR UPDATE`, id).Scan(&existente)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
