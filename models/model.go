package models

import (
	"database/sql"
	"time"
)

// Usuario representa una persona registrada en el sistema (cliente o técnico).
type Usuario struct {
	IDUsuario     int       `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos"`
	Cedula        string    `json:"cedula"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	FechaRegistro time.Time `json:"fecha_registro"`
	TipoUsuario   string    `json:"tipo_usuario"` // cliente / tecnico
	Password      string    `json:"-"`
	Estado        string    `json:"estado"` // activo / inactivo
}

// Estacion representa una estación de revisión técnica.
type Estacion struct {
	IDEstacion      int    `json:"id_estacion"`
	NombreEstacion  string `json:"nombre_estacion"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Provincia       string `json:"provincia"`
	Canton          string `json:"canton"`
	Distrito        string `json:"distrito"`
	HorarioAtencion string `json:"horario_atencion"`
	Estado          string `json:"estado"` // activa / inactiva
}

// Vehiculo representa un vehículo inscrito por un cliente.
type Vehiculo struct {
	IDVehiculo      int       `json:"id_vehiculo"`
	NumeroPlaca     string    `json:"numero_placa"`
	IDPropietario   int       `json:"id_propietario"`
	Marca           string    `json:"marca"`
	Modelo          string    `json:"modelo"`
	Anio            int       `json:"anio"`
	NumeroChasis    string    `json:"numero_chasis"`
	Color           string    `json:"color"`
	TipoCombustible string    `json:"tipo_combustible"`
	Cilindrada      string    `json:"cilindrada"`
	FechaRegistro   time.Time `json:"fecha_registro"`
}

// Cita vincula un vehículo con una estación en una fecha y hora.
type Cita struct {
	IDCita        int       `json:"id_cita"`
	IDVehiculo    int       `json:"id_vehiculo"`
	IDEstacion    int       `json:"id_estacion"`
	FechaCita     time.Time `json:"fecha_cita"`
	HoraCita      string    `json:"hora_cita"`   // HH:MM:SS
	EstadoCita    string    `json:"estado_cita"` // programada / completada / cancelada
	Observaciones string    `json:"observaciones"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// Inspeccion es el resultado de atender una cita.
type Inspeccion struct {
	IDInspeccion          int          `json:"id_inspeccion"`
	IDCita                int          `json:"id_cita"`
	IDTecnico             int          `json:"id_tecnico"`
	FechaInspeccion       time.Time    `json:"fecha_inspeccion"`
	Resultado             string       `json:"resultado"` // aprobado / rechazado
	ObservacionesTecnicas string       `json:"observaciones_tecnicas"`
	FechaVencimiento      sql.NullTime `json:"fecha_vencimiento"`
	NumeroCertificado     string       `json:"numero_certificado"`
}

// DetalleInspeccion es una línea de la lista de revisión de una inspección.
type DetalleInspeccion struct {
	IDDetalle         int    `json:"id_detalle"`
	IDInspeccion      int    `json:"id_inspeccion"`
	CategoriaRevision string `json:"categoria_revision"`
	ResultadoItem     string `json:"resultado_item"` // OK / FALLO
	ObservacionesItem string `json:"observaciones_item"`
}

// Certificado se emite únicamente para inspecciones aprobadas.
type Certificado struct {
	IDCertificado      int       `json:"id_certificado"`
	IDInspeccion       int       `json:"id_inspeccion"`
	NumeroCertificado  string    `json:"numero_certificado"`
	FechaEmision       time.Time `json:"fecha_emision"`
	FechaVencimiento   time.Time `json:"fecha_vencimiento"`
	RutaArchivoDigital string    `json:"ruta_archivo_digital"`
	EstadoCertificado  string    `json:"estado_certificado"` // valido / vencido / anulado
}
