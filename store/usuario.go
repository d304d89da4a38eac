package store

import (
	"context"
	"database/sql"

	"revtec/models"
)

const columnasUsuario = `id_usuario, nombre, apellidos, cedula, email, telefono, direccion, fecha_registro, tipo_usuario, password, estado`

func escanearUsuario(fila interface{ Scan(...interface{}) error }) (models.Usuario, error) {
	var u models.Usuario
	err := fila.Scan(&u.IDUsuario, &u.Nombre, &u.Apellidos, &u.Cedula, &u.Email,
		&u.Telefono, &u.Direccion, &u.FechaRegistro, &u.TipoUsuario, &u.Password, &u.Estado)
	return u, err
}

// InsertarUsuario registra un nuevo usuario y devuelve su identificador.
func (a *Almacen) InsertarUsuario(ctx context.Context, u models.Usuario) (int, error) {
	query := `INSERT INTO usuarios (nombre, apellidos, cedula, email, telefono, direccion, fecha_registro, tipo_usuario, password, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id_usuario`
	var id int
	err := a.ej.QueryRowContext(ctx, query, u.Nombre, u.Apellidos, u.Cedula, u.Email,
		u.Telefono, u.Direccion, u.FechaRegistro, u.TipoUsuario, u.Password, u.Estado).Scan(&id)
	return id, err
}

// ObtenerUsuario devuelve el usuario por id, o ErrNoRows si no existe.
func (a *Almacen) ObtenerUsuario(ctx context.Context, id int) (models.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id_usuario = $1`
	return escanearUsuario(a.ej.QueryRowContext(ctx, query, id))
}

// ListarUsuariosActivos devuelve los usuarios con estado activo.
func (a *Almacen) ListarUsuariosActivos(ctx context.Context) ([]models.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE estado = 'activo' ORDER BY id_usuario`
	rows, err := a.ej.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []models.Usuario
	for rows.Next() {
		u, err := escanearUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// ExisteUsuarioConCedulaOEmail indica si otro usuario (distinto de
// excluirID) ya usa la cédula o el email dados.
func (a *Almacen) ExisteUsuarioConCedulaOEmail(ctx context.Context, cedula, email string, excluirID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM usuarios WHERE (cedula = $1 OR email = $2) AND id_usuario <> $3)`
	var existe bool
	err := a.ej.QueryRowContext(ctx, query, cedula, email, excluirID).Scan(&existe)
	return existe, err
}

// ActualizarUsuario modifica los campos editables del usuario.
func (a *Almacen) ActualizarUsuario(ctx context.Context, u models.Usuario) error {
	query := `UPDATE usuarios SET nombre = $1, apellidos = $2, cedula = $3, email = $4, telefono = $5, direccion = $6,
		tipo_usuario = $7, password = $8, estado = $9
		WHERE id_usuario = $10`
	_, err := a.ej.ExecContext(ctx, query, u.Nombre, u.Apellidos, u.Cedula, u.Email, u.Telefono, u.Direccion,
		u.TipoUsuario, u.Password, u.Estado, u.IDUsuario)
	return err
}

// UsuarioTieneDependencias indica si el usuario posee vehículos o ha
// realizado inspecciones.
func (a *Almacen) UsuarioTieneDependencias(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vehiculos WHERE id_propietario = $1)
		OR EXISTS(SELECT 1 FROM inspecciones WHERE id_tecnico = $1)`
	var tiene bool
	err := a.ej.QueryRowContext(ctx, query, id).Scan(&tiene)
	return tiene, err
}

// DesactivarUsuario marca al usuario como inactivo (borrado suave).
func (a *Almacen) DesactivarUsuario(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `UPDATE usuarios SET estado = 'inactivo' WHERE id_usuario = $1`, id)
	return err
}

// EliminarUsuario borra el registro definitivamente.
func (a *Almacen) EliminarUsuario(ctx context.Context, id int) error {
	_, err := a.ej.ExecContext(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	return err
}

// BuscarUsuarioPorCredenciales devuelve el usuario activo cuyo email y
// password coinciden, o ErrNoRows.
func (a *Almacen) BuscarUsuarioPorCredenciales(ctx context.Context, email, password string) (models.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios
		WHERE LOWER(email) = LOWER($1) AND password = $2 AND estado = 'activo'`
	return escanearUsuario(a.ej.QueryRowContext(ctx, query, email, password))
}

// ContarUsuarios devuelve el total de usuarios y cuántos están activos.
func (a *Almacen) ContarUsuarios(ctx context.Context) (total, activos int, err error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE estado = 'activo') FROM usuarios`
	err = a.ej.QueryRowContext(ctx, query).Scan(&total, &activos)
	return total, activos, err
}

// EsNoEncontrado reporta si err corresponde a una fila inexistente.
func EsNoEncontrado(err error) bool {
	return err == sql.ErrNoRows
}
