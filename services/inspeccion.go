package services

import (
	"context"
	"database/sql"

	"revtec/models"
	"revtec/store"
)

// CrearInspeccion registra el resultado de atender una cita. La cita
// debe existir y seguir programada; esa comprobación va primero, de
// modo que una cita completada o cancelada se rechaza sin importar si
// el técnico es válido. La cita NO pasa a completada aquí: ese
// comportamiento del sistema original se conserva tal cual.
func (s *Servicio) CrearInspeccion(ctx context.Context, dto models.InspeccionCreate) (models.InspeccionResponse, error) {
	fecha, err := interpretarFecha(dto.FechaInspeccion, "fecha de inspección")
	if err != nil {
		return models.InspeccionResponse{}, err
	}
	vencimiento, err := interpretarVencimiento(dto.FechaVencimiento)
	if err != nil {
		return models.InspeccionResponse{}, err
	}
	if dto.Resultado != "aprobado" && dto.Resultado != "rechazado" {
		return models.InspeccionResponse{}, malformado("El resultado debe ser aprobado o rechazado")
	}

	var creada store.InspeccionConTecnico
	err = s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		cita, err := a.ObtenerCita(ctx, dto.IDCita)
		if err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("La cita especificada no existe")
			}
			return err
		}
		if cita.EstadoCita != "programada" {
			return precondicion("Solo se puede inspeccionar una cita en estado programada")
		}

		tecnico, err := a.ObtenerUsuario(ctx, dto.IDTecnico)
		if err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("El técnico especificado no existe")
			}
			return err
		}
		if tecnico.TipoUsuario != "tecnico" {
			return precondicion("El usuario indicado no es un técnico")
		}

		existe, err := a.ExisteInspeccionPorCita(ctx, dto.IDCita)
		if err != nil {
			return err
		}
		if existe {
			return conflicto("Ya existe una inspección registrada para esta cita")
		}

		id, err := a.InsertarInspeccion(ctx, models.Inspeccion{
			IDCita:                dto.IDCita,
			IDTecnico:             dto.IDTecnico,
			FechaInspeccion:       fecha,
			Resultado:             dto.Resultado,
			ObservacionesTecnicas: dto.ObservacionesTecnicas,
			FechaVencimiento:      vencimiento,
			NumeroCertificado:     dto.NumeroCertificado,
		})
		if err != nil {
			return err
		}
		creada, err = a.ObtenerInspeccion(ctx, id)
		return err
	})
	if err != nil {
		return models.InspeccionResponse{}, envolverInterno(err)
	}
	return proyectarInspeccion(creada), nil
}

// ActualizarInspeccion corrige el resultado u observaciones de una
// inspección ya registrada, sin revalidar el estado de la cita de
// origen.
func (s *Servicio) ActualizarInspeccion(ctx context.Context, id int, dto models.InspeccionUpdate) (models.InspeccionResponse, error) {
	if dto.Resultado != "aprobado" && dto.Resultado != "rechazado" {
		return models.InspeccionResponse{}, malformado("El resultado debe ser aprobado o rechazado")
	}
	vencimiento, err := interpretarVencimiento(dto.FechaVencimiento)
	if err != nil {
		return models.InspeccionResponse{}, err
	}

	var actualizada store.InspeccionConTecnico
	err = s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		if _, err := a.ObtenerInspeccion(ctx, id); err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("Inspección no encontrada")
			}
			return err
		}
		err := a.ActualizarInspeccion(ctx, models.Inspeccion{
			IDInspeccion:          id,
			Resultado:             dto.Resultado,
			ObservacionesTecnicas: dto.ObservacionesTecnicas,
			FechaVencimiento:      vencimiento,
			NumeroCertificado:     dto.NumeroCertificado,
		})
		if err != nil {
			return err
		}
		actualizada, err = a.ObtenerInspeccion(ctx, id)
		return err
	})
	if err != nil {
		return models.InspeccionResponse{}, envolverInterno(err)
	}
	return proyectarInspeccion(actualizada), nil
}

// EliminarInspeccion borra la inspección y, en cascada, sus detalles.
// Se rechaza mientras exista un certificado que la referencie.
func (s *Servicio) EliminarInspeccion(ctx context.Context, id int) error {
	err := s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		if _, err := a.ObtenerInspeccion(ctx, id); err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("Inspección no encontrada")
			}
			return err
		}
		tiene, err := a.InspeccionTieneCertificados(ctx, id)
		if err != nil {
			return err
		}
		if tiene {
			return conflicto("No se puede eliminar la inspección porque tiene certificados emitidos")
		}
		return a.EliminarInspeccion(ctx, id)
	})
	return envolverInterno(err)
}

// ObtenerInspeccion devuelve la proyección de una inspección.
func (s *Servicio) ObtenerInspeccion(ctx context.Context, id int) (models.InspeccionResponse, error) {
	inspeccion, err := s.almacen.ObtenerInspeccion(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.InspeccionResponse{}, noEncontrado("Inspección no encontrada")
		}
		return models.InspeccionResponse{}, interno(err)
	}
	return proyectarInspeccion(inspeccion), nil
}

// ListarInspecciones devuelve todas las inspecciones proyectadas.
func (s *Servicio) ListarInspecciones(ctx context.Context) ([]models.InspeccionResponse, error) {
	inspecciones, err := s.almacen.ListarInspecciones(ctx)
	if err != nil {
		return nil, interno(err)
	}
	respuesta := make([]models.InspeccionResponse, 0, len(inspecciones))
	for _, i := range inspecciones {
		respuesta = append(respuesta, proyectarInspeccion(i))
	}
	return respuesta, nil
}

func interpretarVencimiento(fecha string) (sql.NullTime, error) {
	if fecha == "" {
		return sql.NullTime{}, nil
	}
	t, err := interpretarFecha(fecha, "fecha de vencimiento")
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}
