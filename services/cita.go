package services

import (
	"context"
	"log"
	"time"

	"revtec/models"
	"revtec/store"
)

// CrearCita agenda una cita nueva. El orden de las comprobaciones es
// fijo: existencia de referencias, formato, conflicto de horario. Todo
// corre en una transacción con la fila de la estación bloqueada, de
// modo que dos reservas simultáneas de la misma franja no pueden pasar
// ambas la comprobación de conflicto.
func (s *Servicio) CrearCita(ctx context.Context, dto models.CitaCreate) (models.CitaResponse, error) {
	fecha, err := interpretarFecha(dto.FechaCita, "fecha")
	if err != nil {
		return models.CitaResponse{}, err
	}
	hora, err := normalizarHora(dto.HoraCita)
	if err != nil {
		return models.CitaResponse{}, err
	}
	estado := dto.EstadoCita
	if estado == "" {
		estado = "programada"
	}

	var creada store.CitaConRelaciones
	err = s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		existe, err := a.ExisteVehiculo(ctx, dto.IDVehiculo)
		if err != nil {
			return err
		}
		if !existe {
			return noEncontrado("El vehículo especificado no existe")
		}

		existe, err = a.BloquearEstacion(ctx, dto.IDEstacion)
		if err != nil {
			return err
		}
		if !existe {
			return noEncontrado("La estación especificada no existe")
		}

		hayConflicto, err := a.ExisteConflictoCita(ctx, dto.IDEstacion, fecha, hora, 0)
		if err != nil {
			return err
		}
		if hayConflicto {
			return conflicto("Ya existe una cita programada para esa fecha y hora en la estación seleccionada")
		}

		id, err := a.InsertarCita(ctx, models.Cita{
			IDVehiculo:    dto.IDVehiculo,
			IDEstacion:    dto.IDEstacion,
			FechaCita:     fecha,
			HoraCita:      hora,
			EstadoCita:    estado,
			Observaciones: dto.Observaciones,
			FechaCreacion: s.ahora(),
		})
		if err != nil {
			return err
		}
		creada, err = a.ObtenerCita(ctx, id)
		return err
	})
	if err != nil {
		return models.CitaResponse{}, envolverInterno(err)
	}

	s.notificarCita(ctx, creada)
	return proyectarCita(creada), nil
}

// ActualizarCita reprograma una cita existente. La comprobación de
// conflicto excluye la propia cita, así que reprogramar a su mismo
// horario siempre es válido.
func (s *Servicio) ActualizarCita(ctx context.Context, id int, dto models.CitaUpdate) (models.CitaResponse, error) {
	fecha, err := interpretarFecha(dto.FechaCita, "fecha")
	if err != nil {
		return models.CitaResponse{}, err
	}
	hora, err := normalizarHora(dto.HoraCita)
	if err != nil {
		return models.CitaResponse{}, err
	}
	estado := dto.EstadoCita
	if estado == "" {
		estado = "programada"
	}

	var actualizada store.CitaConRelaciones
	err = s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		cita, err := a.ObtenerCita(ctx, id)
		if err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("Cita no encontrada")
			}
			return err
		}

		existe, err := a.BloquearEstacion(ctx, cita.IDEstacion)
		if err != nil {
			return err
		}
		if !existe {
			return noEncontrado("La estación de la cita ya no existe")
		}

		hayConflicto, err := a.ExisteConflictoCita(ctx, cita.IDEstacion, fecha, hora, id)
		if err != nil {
			return err
		}
		if hayConflicto {
			return conflicto("Ya existe una cita programada para esa fecha y hora en la estación")
		}

		err = a.ActualizarCita(ctx, models.Cita{
			IDCita:        id,
			FechaCita:     fecha,
			HoraCita:      hora,
			EstadoCita:    estado,
			Observaciones: dto.Observaciones,
		})
		if err != nil {
			return err
		}
		actualizada, err = a.ObtenerCita(ctx, id)
		return err
	})
	if err != nil {
		return models.CitaResponse{}, envolverInterno(err)
	}
	return proyectarCita(actualizada), nil
}

// EliminarCita borra la cita si no tiene inspecciones; si las tiene, la
// marca como cancelada para conservar el historial.
func (s *Servicio) EliminarCita(ctx context.Context, id int) error {
	err := s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		if _, err := a.ObtenerCita(ctx, id); err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("Cita no encontrada")
			}
			return err
		}
		tiene, err := a.CitaTieneInspecciones(ctx, id)
		if err != nil {
			return err
		}
		if tiene {
			return a.CancelarCita(ctx, id)
		}
		return a.EliminarCita(ctx, id)
	})
	return envolverInterno(err)
}

// ObtenerCita devuelve la proyección de una cita.
func (s *Servicio) ObtenerCita(ctx context.Context, id int) (models.CitaResponse, error) {
	cita, err := s.almacen.ObtenerCita(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.CitaResponse{}, noEncontrado("Cita no encontrada")
		}
		return models.CitaResponse{}, interno(err)
	}
	return proyectarCita(cita), nil
}

// ListarCitas devuelve todas las citas proyectadas.
func (s *Servicio) ListarCitas(ctx context.Context) ([]models.CitaResponse, error) {
	citas, err := s.almacen.ListarCitas(ctx)
	if err != nil {
		return nil, interno(err)
	}
	return proyectarCitas(citas), nil
}

// ListarCitasPorVehiculo devuelve las citas del vehículo.
func (s *Servicio) ListarCitasPorVehiculo(ctx context.Context, idVehiculo int) ([]models.CitaResponse, error) {
	citas, err := s.almacen.ListarCitasPorVehiculo(ctx, idVehiculo)
	if err != nil {
		return nil, interno(err)
	}
	return proyectarCitas(citas), nil
}

// ListarCitasPorEstacion devuelve las citas de la estación; fecha es
// opcional ("" = todas) en formato YYYY-MM-DD.
func (s *Servicio) ListarCitasPorEstacion(ctx context.Context, idEstacion int, fecha string) ([]models.CitaResponse, error) {
	var filtro *time.Time
	if fecha != "" {
		f, err := interpretarFecha(fecha, "fecha")
		if err != nil {
			return nil, err
		}
		filtro = &f
	}
	citas, err := s.almacen.ListarCitasPorEstacion(ctx, idEstacion, filtro)
	if err != nil {
		return nil, interno(err)
	}
	return proyectarCitas(citas), nil
}

// notificarCita envía el correo de confirmación al dueño del vehículo.
// Es el mejor esfuerzo: un fallo solo se registra, nunca aborta la
// creación de la cita.
func (s *Servicio) notificarCita(ctx context.Context, cita store.CitaConRelaciones) {
	if s.notificador == nil {
		return
	}
	email, err := s.almacen.ObtenerEmailPropietarioPorVehiculo(ctx, cita.IDVehiculo)
	if err != nil {
		log.Printf("No se pudo obtener el correo del propietario para la cita %d: %v", cita.IDCita, err)
		return
	}
	estacion := "N/A"
	if cita.NombreEstacion.Valid {
		estacion = cita.NombreEstacion.String
	}
	if err := s.notificador.EnviarConfirmacionCita(email, estacion, cita.FechaCita.Format(formatoFecha), cita.HoraCita); err != nil {
		log.Printf("No se pudo enviar la confirmación de la cita %d: %v", cita.IDCita, err)
	}
}
