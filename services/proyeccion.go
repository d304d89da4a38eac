package services

import (
	"time"

	"revtec/models"
	"revtec/store"
)

// Proyecciones puras de entidades a registros de respuesta. Las
// relaciones ausentes se sustituyen por el centinela "N/A".

func proyectarCita(c store.CitaConRelaciones) models.CitaResponse {
	vehiculoInfo := "N/A"
	if c.NumeroPlaca.Valid {
		vehiculoInfo = c.NumeroPlaca.String + " - " + c.Marca.String + " " + c.Modelo.String
	}
	estacionInfo := "N/A"
	if c.NombreEstacion.Valid {
		estacionInfo = c.NombreEstacion.String
	}
	return models.CitaResponse{
		IDCita:        c.IDCita,
		IDVehiculo:    c.IDVehiculo,
		IDEstacion:    c.IDEstacion,
		FechaCita:     c.FechaCita.Format(formatoFecha),
		HoraCita:      c.HoraCita,
		EstadoCita:    c.EstadoCita,
		Observaciones: c.Observaciones,
		FechaCreacion: c.FechaCreacion,
		VehiculoInfo:  vehiculoInfo,
		EstacionInfo:  estacionInfo,
	}
}

func proyectarCitas(citas []store.CitaConRelaciones) []models.CitaResponse {
	respuesta := make([]models.CitaResponse, 0, len(citas))
	for _, c := range citas {
		respuesta = append(respuesta, proyectarCita(c))
	}
	return respuesta
}

func proyectarInspeccion(i store.InspeccionConTecnico) models.InspeccionResponse {
	tecnicoInfo := "N/A"
	if i.NombreTecnico.Valid {
		tecnicoInfo = i.NombreTecnico.String + " " + i.ApellidosTecnico.String
	}
	vencimiento := ""
	if i.FechaVencimiento.Valid {
		vencimiento = i.FechaVencimiento.Time.Format(formatoFecha)
	}
	return models.InspeccionResponse{
		IDInspeccion:          i.IDInspeccion,
		IDCita:                i.IDCita,
		IDTecnico:             i.IDTecnico,
		FechaInspeccion:       i.FechaInspeccion.Format(formatoFecha),
		Resultado:             i.Resultado,
		ObservacionesTecnicas: i.ObservacionesTecnicas,
		FechaVencimiento:      vencimiento,
		NumeroCertificado:     i.NumeroCertificado,
		TecnicoInfo:           tecnicoInfo,
	}
}

func proyectarUsuario(u models.Usuario) models.UsuarioResponse {
	return models.UsuarioResponse{
		IDUsuario:     u.IDUsuario,
		Nombre:        u.Nombre,
		Apellidos:     u.Apellidos,
		Cedula:        u.Cedula,
		Email:         u.Email,
		Telefono:      u.Telefono,
		Direccion:     u.Direccion,
		TipoUsuario:   u.TipoUsuario,
		Estado:        u.Estado,
		FechaRegistro: u.FechaRegistro,
	}
}

// EstaVigente indica si el certificado es válido y su vencimiento es
// estrictamente futuro. Un vencimiento igual al instante actual ya no
// está vigente.
func EstaVigente(c models.Certificado, ahora time.Time) bool {
	return c.EstadoCertificado == "valido" && c.FechaVencimiento.After(ahora)
}

func proyectarCertificado(c models.Certificado, ahora time.Time) models.CertificadoResponse {
	return models.CertificadoResponse{
		IDCertificado:      c.IDCertificado,
		IDInspeccion:       c.IDInspeccion,
		NumeroCertificado:  c.NumeroCertificado,
		FechaEmision:       c.FechaEmision,
		FechaVencimiento:   c.FechaVencimiento,
		RutaArchivoDigital: c.RutaArchivoDigital,
		EstadoCertificado:  c.EstadoCertificado,
		EstaVigente:        EstaVigente(c, ahora),
	}
}
