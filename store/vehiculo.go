package store

import (
	"context"

	"revtec/models"
)

const columnasVehiculo = `id_vehiculo, numero_placa, id_propietario, marca, modelo, anio, numero_chasis, color, tipo_combustible, cilindrada, fecha_registro`

func escanearVehiculo(fila interface{ Scan(...interface{}) error }) (models.Vehiculo, error) {
	var v models.Vehiculo
	err := fila.Scan(&v.IDVehiculo, &v.NumeroPlaca, &v.IDPropietario, &v.Marca, &v.Modelo,
		&v.Anio, &v.NumeroChasis, &v.Color, &v.TipoCombustible, &v.Cilindrada, &v.FechaRegistro)
	return v, err
}

// InsertarVehiculo registra un vehículo y devuelve su identificador.
func (a *Almacen) InsertarVehiculo(ctx context.Context, v models.Vehiculo) (int, error) {
	query := `INSERT INTO vehiculos (numero_placa, id_propietario, marca, modelo, anio, numero_chasis, color, tipo_combustible, cilindrada, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id_vehiculo`
	var id int
	err := a.ej.QueryRowContext(ctx, query, v.NumeroPlaca, v.IDPropietario, v.Marca, v.Modelo,
		v.Anio, v.NumeroChasis, v.Color, v.TipoCombustible, v.Cilindrada, v.FechaRegistro).Scan(&id)
	return id, err
}

// ObtenerVehiculo devuelve el vehículo por id, o ErrNoRows.
func (a *Almacen) ObtenerVehiculo(ctx context.Context, id int) (models.Vehiculo, error) {
	query := `SELECT ` + columnasVehiculo + ` FROM vehiculos WHERE id_vehiculo = $1`
	return escanearVehiculo(a.ej.QueryRowContext(ctx, query, id))
}

// ExisteVehiculo indica si el vehículo existe.
func (a *Almacen) ExisteVehiculo(ctx context.Context, id int) (bool, error) {
	var existe bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM vehiculos WHERE id_vehiculo = $1)`, id).Scan(&existe)
	return existe, err
}

// ExistePlaca indica si otro vehículo (distinto de excluirID) usa la placa.
func (a *Almacen) ExistePlaca(ctx context.Context, placa string, excluirID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vehiculos WHERE numero_placa = $1 AND id_vehiculo <> $2)`
	var existe bool
	err := a.ej.QueryRowContext(ctx, query, placa, excluirID).Scan(&existe)
	return existe, err
}

// ListarVehiculos devuelve todos los vehículos.
func (a *Almacen) ListarVehiculos(ctx context.Context) ([]models.Vehiculo, error) {
	return a.listarVehiculos(ctx, `SELECT `+columnasVehiculo+` FROM vehiculos ORDER BY id_vehiculo`)
}

// ListarVehiculosPorPropietario devuelve los vehículos del propietario.
func (a *Almacen) ListarVehiculosPorPropietario(ctx context.Context, idPropietario int) ([]models.Vehiculo, error) {
	return a.listarVehiculos(ctx, `SELECT `+columnasVehiculo+` FROM vehiculos WHERE id_propietario = $1 ORDER BY id_vehiculo`, idPropietario)
}

func (a *Almacen) listarVehiculos(ctx context.Context, query string, args ...interface{}) ([]models.Vehiculo, error) {
	rows, err := a.ej.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehiculos []models.Vehiculo
	for rows.Next() {
		v, err := escanearVehiculo(rows)
		if err != nil {
			return nil, err
		}
		vehiculos = append(vehiculos, v)
	}
	return vehiculos, rows.Err()
}

// ActualizarVehiculo modifica los datos del vehículo.
func (a *Almacen) ActualizarVehiculo(ctx context.Context, v models.Vehiculo) error {
	query := `UPDATE vehiculos SET numero_placa = $1, marca = $2, modelo = $3, anio = $4,
		numero_chasis = $5, color = $6, tipo_combustible = $7, cilindrada = $8
		WHERE id_vehiculo = $9`
	_, err := a.ej.ExecContext(ctx, query, v.NumeroPlaca, v.Marca, v.Modelo, v.Anio,
		v.NumeroChasis, v.Color, v.TipoCombustible, v.Cilindrada, v.IDVehiculo)
	return err
}

// VehiculoTieneCitas indica si alguna cita referencia al vehículo.
func (a *Almacen) VehiculoTieneCitas(ctx context.Context, id int) (bool, error) {
	var tiene bool
	err := a.ej.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM citas WHERE id_vehiculo = $1)`, id).Scan(&tiene)
	return tiene, err
}

// EliminarVehiculo borra el vehículo.
func (a *Almacen) EliminarVehiculo(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `DELETE FROM vehiculos WHERE id_vehiculo = $1`, id)
	return err
}

// ObtenerEmailPropietarioPorVehiculo devuelve el email del dueño del
// vehículo, para las notificaciones de cita.
func (a *Almacen) ObtenerEmailPropietarioPorVehiculo(ctx context.Context, idVehiculo int) (string, error) {
	query := `SELECT u.email FROM usuarios u
		JOIN vehiculos v ON v.id_propietario = u.id_usuario
		WHERE v.id_vehiculo = $1`
	var email string
	err := a.ej.QueryRowContext(ctx, query, idVehiculo).Scan(&email)
	return email, err
}
