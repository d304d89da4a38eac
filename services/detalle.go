package services

import (
	"context"

	"revtec/models"
	"revtec/store"
)

// CrearDetalle registra una línea de revisión de una inspección.
func (s *Servicio) CrearDetalle(ctx context.Context, dto models.DetalleCreate) (models.DetalleInspeccion, error) {
	if dto.ResultadoItem != "OK" && dto.ResultadoItem != "FALLO" {
		return models.DetalleInspeccion{}, malformado("El resultado del ítem debe ser OK o FALLO")
	}
	existe, err := s.almacen.ExisteInspeccion(ctx, dto.IDInspeccion)
	if err != nil {
		return models.DetalleInspeccion{}, interno(err)
	}
	if !existe {
		return models.DetalleInspeccion{}, noEncontrado("La inspección especificada no existe")
	}

	detalle := models.DetalleInspeccion{
		IDInspeccion:      dto.IDInspeccion,
		CategoriaRevision: dto.CategoriaRevision,
		ResultadoItem:     dto.ResultadoItem,
		ObservacionesItem: dto.ObservacionesItem,
	}
	id, err := s.almacen.InsertarDetalle(ctx, detalle)
	if err != nil {
		return models.DetalleInspeccion{}, interno(err)
	}
	detalle.IDDetalle = id
	return detalle, nil
}

// ObtenerDetalle devuelve una línea de revisión por id.
func (s *Servicio) ObtenerDetalle(ctx context.Context, id int) (models.DetalleInspeccion, error) {
	detalle, err := s.almacen.ObtenerDetalle(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.DetalleInspeccion{}, noEncontrado("Detalle no encontrado")
		}
		return models.DetalleInspeccion{}, interno(err)
	}
	return detalle, nil
}

// ListarDetalles devuelve todas las líneas de revisión.
func (s *Servicio) ListarDetalles(ctx context.Context) ([]models.DetalleInspeccion, error) {
	detalles, err := s.almacen.ListarDetalles(ctx)
	if err != nil {
		return nil, interno(err)
	}
	return detalles, nil
}

// ListarDetallesPorInspeccion devuelve las líneas de una inspección.
func (s *Servicio) ListarDetallesPorInspeccion(ctx context.Context, idInspeccion int) ([]models.DetalleInspeccion, error) {
	detalles, err := s.almacen.ListarDetallesPorInspeccion(ctx, idInspeccion)
	if err != nil {
		return nil, interno(err)
	}
	return detalles, nil
}

// ActualizarDetalle modifica una línea de revisión.
func (s *Servicio) ActualizarDetalle(ctx context.Context, id int, dto models.DetalleCreate) (models.DetalleInspeccion, error) {
	if dto.ResultadoItem != "OK" && dto.ResultadoItem != "FALLO" {
		return models.DetalleInspeccion{}, malformado("El resultado del ítem debe ser OK o FALLO")
	}
	detalle, err := s.almacen.ObtenerDetalle(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.DetalleInspeccion{}, noEncontrado("Detalle no encontrado")
		}
		return models.DetalleInspeccion{}, interno(err)
	}
	detalle.CategoriaRevision = dto.CategoriaRevision
	detalle.ResultadoItem = dto.ResultadoItem
	detalle.ObservacionesItem = dto.ObservacionesItem
	if err := s.almacen.ActualizarDetalle(ctx, detalle); err != nil {
		return models.DetalleInspeccion{}, interno(err)
	}
	return detalle, nil
}

// EliminarDetalle borra una línea de revisión.
func (s *Servicio) EliminarDetalle(ctx context.Context, id int) error {
	if _, err := s.almacen.ObtenerDetalle(ctx, id); err != nil {
		if store.EsNoEncontrado(err) {
			return noEncontrado("Detalle no encontrado")
		}
		return interno(err)
	}
	if err := s.almacen.EliminarDetalle(ctx, id); err != nil {
		return interno(err)
	}
	return nil
}
