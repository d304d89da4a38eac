package services

import (
	"context"
	"strings"

	"revtec/models"
	"revtec/store"
)

// CrearVehiculo registra un vehículo. La placa debe ser única y el
// propietario debe existir.
func (s *Servicio) CrearVehiculo(ctx context.Context, dto models.VehiculoCreate) (models.Vehiculo, error) {
	placa := strings.ToUpper(strings.TrimSpace(dto.NumeroPlaca))

	if _, err := s.almacen.ObtenerUsuario(ctx, dto.IDPropietario); err != nil {
		if store.EsNoEncontrado(err) {
			return models.Vehiculo{}, noEncontrado("El propietario especificado no existe")
		}
		return models.Vehiculo{}, interno(err)
	}
	duplicada, err := s.almacen.ExistePlaca(ctx, placa, 0)
	if err != nil {
		return models.Vehiculo{}, interno(err)
	}
	if duplicada {
		return models.Vehiculo{}, conflicto("Ya existe un vehículo con esa placa")
	}

	vehiculo := models.Vehiculo{
		NumeroPlaca:     placa,
		IDPropietario:   dto.IDPropietario,
		Marca:           dto.Marca,
		Modelo:          dto.Modelo,
		Anio:            dto.Anio,
		NumeroChasis:    dto.NumeroChasis,
		Color:           dto.Color,
		TipoCombustible: dto.TipoCombustible,
		Cilindrada:      dto.Cilindrada,
		FechaRegistro:   s.ahora(),
	}
	id, err := s.almacen.InsertarVehiculo(ctx, vehiculo)
	if err != nil {
		return models.Vehiculo{}, interno(err)
	}
	vehiculo.IDVehiculo = id
	return vehiculo, nil
}

// ObtenerVehiculo devuelve un vehículo por id.
func (s *Servicio) ObtenerVehiculo(ctx context.Context, id int) (models.Vehiculo, error) {
	vehiculo, err := s.almacen.ObtenerVehiculo(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.Vehiculo{}, noEncontrado("Vehículo no encontrado")
		}
		return models.Vehiculo{}, interno(err)
	}
	return vehiculo, nil
}

// ListarVehiculos devuelve todos los vehículos.
func (s *Servicio) ListarVehiculos(ctx context.Context) ([]models.Vehiculo, error) {
	vehiculos, err := s.almacen.ListarVehiculos(ctx)
	if err != nil {
		return nil, interno(err)
	}
	return vehiculos, nil
}

// ListarVehiculosPorPropietario devuelve los vehículos de un usuario.
func (s *Servicio) ListarVehiculosPorPropietario(ctx context.Context, idPropietario int) ([]models.Vehiculo, error) {
	vehiculos, err := s.almacen.ListarVehiculosPorPropietario(ctx, idPropietario)
	if err != nil {
		return nil, interno(err)
	}
	return vehiculos, nil
}

// ActualizarVehiculo modifica un vehículo existente. La placa puede
// conservarse porque la comprobación de duplicado excluye al propio
// vehículo.
func (s *Servicio) ActualizarVehiculo(ctx context.Context, id int, dto models.VehiculoCreate) (models.Vehiculo, error) {
	vehiculo, err := s.almacen.ObtenerVehiculo(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.Vehiculo{}, noEncontrado("Vehículo no encontrado")
		}
		return models.Vehiculo{}, interno(err)
	}

	placa := strings.ToUpper(strings.TrimSpace(dto.NumeroPlaca))
	duplicada, err := s.almacen.ExistePlaca(ctx, placa, id)
	if err != nil {
		return models.Vehiculo{}, interno(err)
	}
	if duplicada {
		return models.Vehiculo{}, conflicto("Ya existe otro vehículo con esa placa")
	}
	if _, err := s.almacen.ObtenerUsuario(ctx, dto.IDPropietario); err != nil {
		if store.EsNoEncontrado(err) {
			return models.Vehiculo{}, noEncontrado("El propietario especificado no existe")
		}
		return models.Vehiculo{}, interno(err)
	}

	vehiculo.NumeroPlaca = placa
	vehiculo.IDPropietario = dto.IDPropietario
	vehiculo.Marca = dto.Marca
	vehiculo.Modelo = dto.Modelo
	vehiculo.Anio = dto.Anio
	vehiculo.NumeroChasis = dto.NumeroChasis
	vehiculo.Color = dto.Color
	vehiculo.TipoCombustible = dto.TipoCombustible
	vehiculo.Cilindrada = dto.Cilindrada
	if err := s.almacen.ActualizarVehiculo(ctx, vehiculo); err != nil {
		return models.Vehiculo{}, interno(err)
	}
	return vehiculo, nil
}

// EliminarVehiculo borra un vehículo sin citas asociadas.
func (s *Servicio) EliminarVehiculo(ctx context.Context, id int) error {
	existe, err := s.almacen.ExisteVehiculo(ctx, id)
	if err != nil {
		return interno(err)
	}
	if !existe {
		return noEncontrado("Vehículo no encontrado")
	}
	conCitas, err := s.almacen.VehiculoTieneCitas(ctx, id)
	if err != nil {
		return interno(err)
	}
	if conCitas {
		return conflicto("No se puede eliminar un vehículo con citas registradas")
	}
	if err := s.almacen.EliminarVehiculo(ctx, id); err != nil {
		return interno(err)
	}
	return nil
}
