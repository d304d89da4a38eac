package services

import (
	"context"

	"revtec/models"
	"revtec/store"
)

// CrearEstacion registra una estación de revisión.
func (s *Servicio) CrearEstacion(ctx context.Context, dto models.Estacion) (models.Estacion, error) {
	id, err := s.almacen.InsertarEstacion(ctx, dto)
	if err != nil {
		return models.Estacion{}, interno(err)
	}
	dto.IDEstacion = id
	return dto, nil
}

// ObtenerEstacion devuelve una estación por id.
func (s *Servicio) ObtenerEstacion(ctx context.Context, id int) (models.Estacion, error) {
	estacion, err := s.almacen.ObtenerEstacion(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.Estacion{}, noEncontrado("Estación no encontrada")
		}
		return models.Estacion{}, interno(err)
	}
	return estacion, nil
}

// ListarEstaciones devuelve todas las estaciones.
func (s *Servicio) ListarEstaciones(ctx context.Context) ([]models.Estacion, error) {
	estaciones, err := s.almacen.ListarEstaciones(ctx)
	if err != nil {
		return nil, interno(err)
	}
	return estaciones, nil
}

// ActualizarEstacion modifica una estación existente.
func (s *Servicio) ActualizarEstacion(ctx context.Context, id int, dto models.Estacion) (models.Estacion, error) {
	estacion, err := s.almacen.ObtenerEstacion(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.Estacion{}, noEncontrado("Estación no encontrada")
		}
		return models.Estacion{}, interno(err)
	}
	estacion.NombreEstacion = dto.NombreEstacion
	estacion.Direccion = dto.Direccion
	estacion.Telefono = dto.Telefono
	estacion.Email = dto.Email
	estacion.Provincia = dto.Provincia
	estacion.Canton = dto.Canton
	estacion.Distrito = dto.Distrito
	estacion.HorarioAtencion = dto.HorarioAtencion
	estacion.Estado = dto.Estado
	if err := s.almacen.ActualizarEstacion(ctx, estacion); err != nil {
		return models.Estacion{}, interno(err)
	}
	return estacion, nil
}

// EliminarEstacion borra una estación.
func (s *Servicio) EliminarEstacion(ctx context.Context, id int) error {
	existe, err := s.almacen.ExisteEstacion(ctx, id)
	if err != nil {
		return interno(err)
	}
	if !existe {
		return noEncontrado("Estación no encontrada")
	}
	if err := s.almacen.EliminarEstacion(ctx, id); err != nil {
		return interno(err)
	}
	return nil
}
