package store

import (
	"context"
	"database/sql"
	"time"

	"revtec/models"
)

// CitaConRelaciones es la fila de cita junto con los datos mínimos del
// vehículo y la estación para la proyección de respuesta. Las columnas
// de la relación son anulables: la cita puede sobrevivir a sus
// referencias en consultas con LEFT JOIN.
type CitaConRelaciones struct {
	models.Cita
	NumeroPlaca    sql.NullString
	Marca          sql.NullString
	Modelo         sql.NullString
	NombreEstacion sql.NullString
}

const consultaCitaRelaciones = `SELECT c.id_cita, c.id_vehiculo, c.id_estacion, c.fecha_cita, c.hora_cita,
		c.estado_cita, c.observaciones, c.fecha_creacion,
		v.numero_placa, v.marca, v.modelo, e.nombre_estacion
	FROM citas c
	LEFT JOIN vehiculos v ON v.id_vehiculo = c.id_vehiculo
	LEFT JOIN estaciones e ON e.id_estacion = c.id_estacion`

func escanearCitaRelaciones(fila interface{ Scan(...interface{}) error }) (CitaConRelaciones, error) {
	var c CitaConRelaciones
	err := fila.Scan(&c.IDCita, &c.IDVehiculo, &c.IDEstacion, &c.FechaCita, &c.HoraCita,
		&c.EstadoCita, &c.Observaciones, &c.FechaCreacion,
		&c.NumeroPlaca, &c.Marca, &c.Modelo, &c.NombreEstacion)
	return c, err
}

// InsertarCita registra una cita y devuelve su identificador.
func (a *Almacen) InsertarCita(ctx context.Context, c models.Cita) (int, error) {
	query := `INSERT INTO citas (id_vehiculo, id_estacion, fecha_cita, hora_cita, estado_cita, observaciones, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_cita`
	var id int
	err := a.ej.QueryRowContext(ctx, query, c.IDVehiculo, c.IDEstacion, c.FechaCita, c.HoraCita,
		c.EstadoCita, c.Observaciones, c.FechaCreacion).Scan(&id)
	return id, err
}

// ObtenerCita devuelve la cita con sus relaciones, o ErrNoRows.
func (a *Almacen) ObtenerCita(ctx context.Context, id int) (CitaConRelaciones, error) {
	return escanearCitaRelaciones(a.ej.QueryRowContext(ctx, consultaCitaRelaciones+` WHERE c.id_cita = $1`, id))
}

// ListarCitas devuelve todas las citas con sus relaciones.
func (a *Almacen) ListarCitas(ctx context.Context) ([]CitaConRelaciones, error) {
	return a.listarCitas(ctx, consultaCitaRelaciones+` ORDER BY c.id_cita`)
}

// ListarCitasPorVehiculo devuelve las citas del vehículo, más recientes primero.
func (a *Almacen) ListarCitasPorVehiculo(ctx context.Context, idVehiculo int) ([]CitaConRelaciones, error) {
	return a.listarCitas(ctx, consultaCitaRelaciones+` WHERE c.id_vehiculo = $1 ORDER BY c.fecha_cita DESC`, idVehiculo)
}

// ListarCitasPorEstacion devuelve las citas de la estación, opcionalmente
// filtradas por fecha, en orden de atención.
func (a *Almacen) ListarCitasPorEstacion(ctx context.Context, idEstacion int, fecha *time.Time) ([]CitaConRelaciones, error) {
	if fecha != nil {
		return a.listarCitas(ctx, consultaCitaRelaciones+
			` WHERE c.id_estacion = $1 AND c.fecha_cita = $2 ORDER BY c.fecha_cita, c.hora_cita`, idEstacion, *fecha)
	}
	return a.listarCitas(ctx, consultaCitaRelaciones+
		` WHERE c.id_estacion = $1 ORDER BY c.fecha_cita, c.hora_cita`, idEstacion)
}

func (a *Almacen) listarCitas(ctx context.Context, query string, args ...interface{}) ([]CitaConRelaciones, error) {
	rows, err := a.ej.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var citas []CitaConRelaciones
	for rows.Next() {
		c, err := escanearCitaRelaciones(rows)
		if err != nil {
			return nil, err
		}
		citas = append(citas, c)
	}
	return citas, rows.Err()
}

// ExisteConflictoCita indica si ya hay una cita programada para la
// misma estación, fecha y hora, excluyendo excluirID al actualizar.
func (a *Almacen) ExisteConflictoCita(ctx context.Context, idEstacion int, fecha time.Time, hora string, excluirID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM citas
		WHERE id_estacion = $1 AND fecha_cita = $2 AND hora_cita = $3
		AND estado_cita = 'programada' AND id_cita <> $4)`
	var existe bool
	err := a.ej.QueryRowContext(ctx, query, idEstacion, fecha, hora, excluirID).Scan(&existe)
	return existe, err
}

// ActualizarCita modifica fecha, hora, estado y observaciones.
func (a *Almacen) ActualizarCita(ctx context.Context, c models.Cita) error {
	query := `UPDATE citas SET fecha_cita = $1, hora_cita = $2, estado_cita = $3, observaciones = $4
		WHERE id_cita = $5`
	_, err := a.ej.ExecContext(ctx, query, c.FechaCita, c.HoraCita, c.EstadoCita, c.Observaciones, c.IDCita)
	return err
}

// CitaTieneInspecciones indica si alguna inspección referencia la cita.
func (a *Almacen) CitaTieneInspecciones(ctx context.Context, id int) (bool, error) {
	var tiene bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM inspecciones WHERE id_cita = $1)`, id).Scan(&tiene)
	return tiene, err
}

// CancelarCita cambia el estado de la cita a cancelada (borrado suave).
func (a *Almacen) CancelarCita(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `UPDATE citas SET estado_cita = 'cancelada' WHERE id_cita = $1`, id)
	return err
}

// EliminarCita borra la cita definitivamente.
func (a *Almacen) EliminarCita(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `DELETE FROM citas WHERE id_cita = $1`, id)
	return err
}
