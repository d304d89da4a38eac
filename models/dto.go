package models

import "time"

// DTOs de entrada y salida de la API. Las fechas viajan como texto
// ("2006-01-02") y las horas como "HH:MM:SS"; los servicios validan el
// formato antes de tocar la base de datos.

type UsuarioCreate struct {
	Nombre      string `json:"nombre"`
	Apellidos   string `json:"apellidos"`
	Cedula      string `json:"cedula"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	Direccion   string `json:"direccion"`
	TipoUsuario string `json:"tipo_usuario"`
	Password    string `json:"password"`
	Estado      string `json:"estado"`
}

type UsuarioUpdate struct {
	Nombre      string `json:"nombre"`
	Apellidos   string `json:"apellidos"`
	Cedula      string `json:"cedula"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	Direccion   string `json:"direccion"`
	TipoUsuario string `json:"tipo_usuario"`
	Password    string `json:"password"`
	Estado      string `json:"estado"`
}

type UsuarioResponse struct {
	IDUsuario     int       `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos"`
	Cedula        string    `json:"cedula"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	TipoUsuario   string    `json:"tipo_usuario"`
	Estado        string    `json:"estado"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

type UsuarioLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VehiculoCreate struct {
	NumeroPlaca     string `json:"numero_placa"`
	IDPropietario   int    `json:"id_propietario"`
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	Anio            int    `json:"anio"`
	NumeroChasis    string `json:"numero_chasis"`
	Color           string `json:"color"`
	TipoCombustible string `json:"tipo_combustible"`
	Cilindrada      string `json:"cilindrada"`
}

type CitaCreate struct {
	IDVehiculo    int    `json:"id_vehiculo"`
	IDEstacion    int    `json:"id_estacion"`
	FechaCita     string `json:"fecha_cita"`
	HoraCita      string `json:"hora_cita"`
	EstadoCita    string `json:"estado_cita"`
	Observaciones string `json:"observaciones"`
}

type CitaUpdate struct {
	FechaCita     string `json:"fecha_cita"`
	HoraCita      string `json:"hora_cita"`
	EstadoCita    string `json:"estado_cita"`
	Observaciones string `json:"observaciones"`
}

type CitaResponse struct {
	IDCita        int       `json:"id_cita"`
	IDVehiculo    int       `json:"id_vehiculo"`
	IDEstacion    int       `json:"id_estacion"`
	FechaCita     string    `json:"fecha_cita"`
	HoraCita      string    `json:"hora_cita"`
	EstadoCita    string    `json:"estado_cita"`
	Observaciones string    `json:"observaciones"`
	FechaCreacion time.Time `json:"fecha_creacion"`

	// Información adicional para mostrar
	VehiculoInfo string `json:"vehiculo_info"`
	EstacionInfo string `json:"estacion_info"`
}

type InspeccionCreate struct {
	IDCita                int    `json:"id_cita"`
	IDTecnico             int    `json:"id_tecnico"`
	FechaInspeccion       string `json:"fecha_inspeccion"`
	Resultado             string `json:"resultado"`
	ObservacionesTecnicas string `json:"observaciones_tecnicas"`
	FechaVencimiento      string `json:"fecha_vencimiento"`
	NumeroCertificado     string `json:"numero_certificado"`
}

type InspeccionUpdate struct {
	Resultado             string `json:"resultado"`
	ObservacionesTecnicas string `json:"observaciones_tecnicas"`
	FechaVencimiento      string `json:"fecha_vencimiento"`
	NumeroCertificado     string `json:"numero_certificado"`
}

type InspeccionResponse struct {
	IDInspeccion          int    `json:"id_inspeccion"`
	IDCita                int    `json:"id_cita"`
	IDTecnico             int    `json:"id_tecnico"`
	FechaInspeccion       string `json:"fecha_inspeccion"`
	Resultado             string `json:"resultado"`
	ObservacionesTecnicas string `json:"observaciones_tecnicas"`
	FechaVencimiento      string `json:"fecha_vencimiento,omitempty"`
	NumeroCertificado     string `json:"numero_certificado"`
	TecnicoInfo           string `json:"tecnico_info"`
}

type DetalleCreate struct {
	IDInspeccion      int    `json:"id_inspeccion"`
	CategoriaRevision string `json:"categoria_revision"`
	ResultadoItem     string `json:"resultado_item"`
	ObservacionesItem string `json:"observaciones_item"`
}

type CertificadoCreate struct {
	IDInspeccion       int    `json:"id_inspeccion"`
	NumeroCertificado  string `json:"numero_certificado"`
	FechaEmision       string `json:"fecha_emision"`
	FechaVencimiento   string `json:"fecha_vencimiento"`
	RutaArchivoDigital string `json:"ruta_archivo_digital"`
	EstadoCertificado  string `json:"estado_certificado"`
}

type CertificadoResponse struct {
	IDCertificado      int       `json:"id_certificado"`
	IDInspeccion       int       `json:"id_inspeccion"`
	NumeroCertificado  string    `json:"numero_certificado"`
	FechaEmision       time.Time `json:"fecha_emision"`
	FechaVencimiento   time.Time `json:"fecha_vencimiento"`
	RutaArchivoDigital string    `json:"ruta_archivo_digital"`
	EstadoCertificado  string    `json:"estado_certificado"`
	EstaVigente        bool      `json:"esta_vigente"`
}
