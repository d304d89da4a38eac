package services

import (
	"context"
	"strings"

	"revtec/models"
	"revtec/store"
)

// CrearUsuario registra un usuario nuevo. La cédula y el correo deben
// ser únicos entre todos los usuarios, activos o no.
func (s *Servicio) CrearUsuario(ctx context.Context, dto models.UsuarioCreate) (models.UsuarioResponse, error) {
	cedula := strings.TrimSpace(dto.Cedula)
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	duplicado, err := s.almacen.ExisteUsuarioConCedulaOEmail(ctx, cedula, email, 0)
	if err != nil {
		return models.UsuarioResponse{}, interno(err)
	}
	if duplicado {
		return models.UsuarioResponse{}, conflicto("Ya existe un usuario con esa cédula o correo electrónico")
	}

	estado := dto.Estado
	if estado == "" {
		estado = "activo"
	}
	usuario := models.Usuario{
		Nombre:        strings.TrimSpace(dto.Nombre),
		Apellidos:     strings.TrimSpace(dto.Apellidos),
		Cedula:        cedula,
		Email:         email,
		Telefono:      dto.Telefono,
		Direccion:     dto.Direccion,
		FechaRegistro: s.ahora(),
		TipoUsuario:   dto.TipoUsuario,
		Password:      dto.Password,
		Estado:        estado,
	}
	id, err := s.almacen.InsertarUsuario(ctx, usuario)
	if err != nil {
		return models.UsuarioResponse{}, interno(err)
	}
	usuario.IDUsuario = id
	return proyectarUsuario(usuario), nil
}

// ObtenerUsuario devuelve un usuario por id. Los usuarios inactivos no
// se exponen por este camino.
func (s *Servicio) ObtenerUsuario(ctx context.Context, id int) (models.UsuarioResponse, error) {
	usuario, err := s.almacen.ObtenerUsuario(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.UsuarioResponse{}, noEncontrado("Usuario no encontrado")
		}
		return models.UsuarioResponse{}, interno(err)
	}
	if usuario.Estado != "activo" {
		return models.UsuarioResponse{}, noEncontrado("Usuario no encontrado")
	}
	return proyectarUsuario(usuario), nil
}

// ListarUsuarios devuelve los usuarios activos.
func (s *Servicio) ListarUsuarios(ctx context.Context) ([]models.UsuarioResponse, error) {
	usuarios, err := s.almacen.ListarUsuariosActivos(ctx)
	if err != nil {
		return nil, interno(err)
	}
	respuesta := make([]models.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		respuesta = append(respuesta, proyectarUsuario(u))
	}
	return respuesta, nil
}

// ActualizarUsuario modifica los datos de un usuario. La comprobación
// de unicidad excluye al propio usuario para que pueda conservar su
// cédula y correo sin cambios.
func (s *Servicio) ActualizarUsuario(ctx context.Context, id int, dto models.UsuarioUpdate) (models.UsuarioResponse, error) {
	usuario, err := s.almacen.ObtenerUsuario(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.UsuarioResponse{}, noEncontrado("Usuario no encontrado")
		}
		return models.UsuarioResponse{}, interno(err)
	}

	cedula := strings.TrimSpace(dto.Cedula)
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	duplicado, err := s.almacen.ExisteUsuarioConCedulaOEmail(ctx, cedula, email, id)
	if err != nil {
		return models.UsuarioResponse{}, interno(err)
	}
	if duplicado {
		return models.UsuarioResponse{}, conflicto("Ya existe otro usuario con esa cédula o correo electrónico")
	}

	usuario.Nombre = strings.TrimSpace(dto.Nombre)
	usuario.Apellidos = strings.TrimSpace(dto.Apellidos)
	usuario.Cedula = cedula
	usuario.Email = email
	usuario.Telefono = dto.Telefono
	usuario.Direccion = dto.Direccion
	usuario.TipoUsuario = dto.TipoUsuario
	if dto.Password != "" {
		usuario.Password = dto.Password
	}
	if dto.Estado != "" {
		usuario.Estado = dto.Estado
	}
	if err := s.almacen.ActualizarUsuario(ctx, usuario); err != nil {
		return models.UsuarioResponse{}, interno(err)
	}
	return proyectarUsuario(usuario), nil
}

// EliminarUsuario borra un usuario. Si tiene vehículos registrados o
// inspecciones realizadas se desactiva en lugar de borrarse, para no
// dejar referencias colgando.
func (s *Servicio) EliminarUsuario(ctx context.Context, id int) error {
	err := s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		if _, err := a.ObtenerUsuario(ctx, id); err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("Usuario no encontrado")
			}
			return err
		}
		dependencias, err := a.UsuarioTieneDependencias(ctx, id)
		if err != nil {
			return err
		}
		if dependencias {
			return a.DesactivarUsuario(ctx, id)
		}
		return a.EliminarUsuario(ctx, id)
	})
	return envolverInterno(err)
}

// Login valida las credenciales contra los usuarios activos.
func (s *Servicio) Login(ctx context.Context, dto models.UsuarioLogin) (models.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	usuario, err := s.almacen.BuscarUsuarioPorCredenciales(ctx, email, dto.Password)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.UsuarioResponse{}, ErrCredencialesInvalidas
		}
		return models.UsuarioResponse{}, interno(err)
	}
	return proyectarUsuario(usuario), nil
}

// Salud cuenta usuarios como comprobación rápida de la base de datos.
func (s *Servicio) Salud(ctx context.Context) (map[string]interface{}, error) {
	total, activos, err := s.almacen.ContarUsuarios(ctx)
	if err != nil {
		return nil, interno(err)
	}
	return map[string]interface{}{
		"estado":           "ok",
		"usuarios":         total,
		"usuarios_activos": activos,
		"timestamp":        s.ahora(),
	}, nil
}
