package store

import (
	"context"

	"revtec/models"
)

const columnasDetalle = `id_detalle, id_inspeccion, categoria_revision, resultado_item, observaciones_item`

func escanearDetalle(fila interface{ Scan(...interface{}) error }) (models.DetalleInspeccion, error) {
	var d models.DetalleInspeccion
	err := fila.Scan(&d.IDDetalle, &d.IDInspeccion, &d.CategoriaRevision, &d.ResultadoItem, &d.ObservacionesItem)
	return d, err
}

// InsertarDetalle registra una línea de revisión y devuelve su identificador.
func (a *Almacen) InsertarDetalle(ctx context.Context, d models.DetalleInspeccion) (int, error) {
	query := `INSERT INTO detalle_inspecciones (id_inspeccion, categoria_revision, resultado_item, observaciones_item)
		VALUES ($1, $2, $3, $4) RETURNING id_detalle`
	var id int
	err := a.ej.QueryRowContext(ctx, query, d.IDInspeccion, d.CategoriaRevision, d.ResultadoItem, d.ObservacionesItem).Scan(&id)
	return id, err
}

// ObtenerDetalle devuelve la línea por id, o ErrNoRows.
func (a *Almacen) ObtenerDetalle(ctx context.Context, id int) (models.DetalleInspeccion, error) {
	query := `SELECT ` + columnasDetalle + ` FROM detalle_inspecciones WHERE id_detalle = $1`
	return escanearDetalle(a.ej.QueryRowContext(ctx, query, id))
}

// ListarDetalles devuelve todas las líneas de revisión.
func (a *Almacen) ListarDetalles(ctx context.Context) ([]models.DetalleInspeccion, error) {
	return a.listarDetalles(ctx, `SELECT `+columnasDetalle+` FROM detalle_inspecciones ORDER BY id_detalle`)
}

// ListarDetallesPorInspeccion devuelve las líneas de una inspección.
func (a *Almacen) ListarDetallesPorInspeccion(ctx context.Context, idInspeccion int) ([]models.DetalleInspeccion, error) {
	return a.listarDetalles(ctx, `SELECT `+columnasDetalle+` FROM detalle_inspecciones WHERE id_inspeccion = $1 ORDER BY id_detalle`, idInspeccion)
}

func (a *Almacen) listarDetalles(ctx context.Context, query string, args ...interface{}) ([]models.DetalleInspeccion, error) {
	rows, err := a.ej.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detalles []models.DetalleInspeccion
	for rows.Next() {
		d, err := escanearDetalle(rows)
		if err != nil {
			return nil, err
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}

// ActualizarDetalle modifica la línea de revisión.
func (a *Almacen) ActualizarDetalle(ctx context.Context, d models.DetalleInspeccion) error {
	query := `UPDATE detalle_inspecciones SET categoria_revision = $1, resultado_item = $2, observaciones_item = $3
		WHERE id_detalle = $4`
	_, err := a.ej.ExecContext(ctx, query, d.CategoriaRevision, d.ResultadoItem, d.ObservacionesItem, d.IDDetalle)
	return err
}

// EliminarDetalle borra la línea.
func (a *Almacen) EliminarDetalle(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `DELETE FROM detalle_inspecciones WHERE id_detalle = $1`, id)
	return err
}

// ExisteInspeccion indica si la inspección existe.
func (a *Almacen) ExisteInspeccion(ctx context.Context, id int) (bool, error) {
	var existe bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM inspecciones WHERE id_inspeccion = $1)`, id).Scan(&existe)
	return existe, err
}
