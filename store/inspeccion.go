package store

import (
	"context"
	"database/sql"

	"revtec/models"
)

// InspeccionConTecnico agrega el nombre del técnico para la proyección.
type InspeccionConTecnico struct {
	models.Inspeccion
	NombreTecnico    sql.NullString
	ApellidosTecnico sql.NullString
}

const consultaInspeccionTecnico = `SELECT i.id_inspeccion, i.id_cita, i.id_tecnico, i.fecha_inspeccion,
		i.resultado, i.observaciones_tecnicas, i.fecha_vencimiento, i.numero_certificado,
		u.nombre, u.apellidos
	FROM inspecciones i
	LEFT JOIN usuarios u ON u.id_usuario = i.id_tecnico`

func escanearInspeccionTecnico(fila interface{ Scan(...interface{}) error }) (InspeccionConTecnico, error) {
	var i InspeccionConTecnico
	err := fila.Scan(&i.IDInspeccion, &i.IDCita, &i.IDTecnico, &i.FechaInspeccion,
		&i.Resultado, &i.ObservacionesTecnicas, &i.FechaVencimiento, &i.NumeroCertificado,
		&i.NombreTecnico, &i.ApellidosTecnico)
	return i, err
}

// InsertarInspeccion registra una inspección y devuelve su identificador.
func (a *Almacen) InsertarInspeccion(ctx context.Context, i models.Inspeccion) (int, error) {
	query := `INSERT INTO inspecciones (id_cita, id_tecnico, fecha_inspeccion, resultado, observaciones_tecnicas, fecha_vencimiento, numero_certificado)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_inspeccion`
	var id int
	err := a.ej.QueryRowContext(ctx, query, i.IDCita, i.IDTecnico, i.FechaInspeccion, i.Resultado,
		i.ObservacionesTecnicas, i.FechaVencimiento, i.NumeroCertificado).Scan(&id)
	return id, err
}

// ObtenerInspeccion devuelve la inspección con su técnico, o ErrNoRows.
func (a *Almacen) ObtenerInspeccion(ctx context.Context, id int) (InspeccionConTecnico, error) {
	return escanearInspeccionTecnico(a.ej.QueryRowContext(ctx, consultaInspeccionTecnico+` WHERE i.id_inspeccion = $1`, id))
}

// ListarInspecciones devuelve todas las inspecciones.
func (a *Almacen) ListarInspecciones(ctx context.Context) ([]InspeccionConTecnico, error) {
	rows, err := a.ej.QueryContext(ctx, consultaInspeccionTecnico+` ORDER BY i.id_inspeccion`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inspecciones []InspeccionConTecnico
	for rows.Next() {
		i, err := escanearInspeccionTecnico(rows)
		if err != nil {
			return nil, err
		}
		inspecciones = append(inspecciones, i)
	}
	return inspecciones, rows.Err()
}

// ExisteInspeccionPorCita indica si la cita ya tiene inspección
// registrada (relación uno a uno garantizada por consulta).
func (a *Almacen) ExisteInspeccionPorCita(ctx context.Context, idCita int) (bool, error) {
	var existe bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM inspecciones WHERE id_cita = $1)`, idCita).Scan(&existe)
	return existe, err
}

// ActualizarInspeccion modifica resultado, observaciones, vencimiento y
// número de certificado. No toca la cita de origen.
func (a *Almacen) ActualizarInspeccion(ctx context.Context, i models.Inspeccion) error {
	query := `UPDATE inspecciones SET resultado = $1, observaciones_tecnicas = $2, fecha_vencimiento = $3, numero_certificado = $4
		WHERE id_inspeccion = $5`
	_, err := a.ej.ExecContext(ctx, query, i.Resultado, i.ObservacionesTecnicas, i.FechaVencimiento, i.NumeroCertificado, i.IDInspeccion)
	return err
}

// InspeccionTieneCertificados indica si algún certificado referencia la
// inspección.
func (a *Almacen) InspeccionTieneCertificados(ctx context.Context, id int) (bool, error) {
	var tiene bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM certificados WHERE id_inspeccion = $1)`, id).Scan(&tiene)
	return tiene, err
}

// EliminarInspeccion borra la inspección; los detalles caen en cascada.
func (a *Almacen) EliminarInspeccion(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `DELETE FROM inspecciones WHERE id_inspeccion = $1`, id)
	return err
}
