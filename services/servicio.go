package services

import (
	"time"

	"revtec/store"
)

// Servicio orquesta los casos de uso sobre el almacén inyectado.
type Servicio struct {
	almacen     *store.Almacen
	archivador  *Archivador
	notificador *Notificador
	ahora       func() time.Time
}

// NuevoServicio crea el servicio. El archivador y el notificador son
// opcionales; sin ellos el certificado se emite sin archivo digital y
// la cita se crea sin correo de confirmación.
func NuevoServicio(almacen *store.Almacen) *Servicio {
	return &Servicio{almacen: almacen, ahora: time.Now}
}

// ConArchivador habilita la generación y archivo de PDFs.
func (s *Servicio) ConArchivador(a *Archivador) *Servicio {
	s.archivador = a
	return s
}

// ConNotificador habilita los correos de confirmación de cita.
func (s *Servicio) ConNotificador(n *Notificador) *Servicio {
	s.notificador = n
	return s
}

// ConReloj fija el reloj del servicio; se usa en pruebas.
func (s *Servicio) ConReloj(ahora func() time.Time) *Servicio {
	s.ahora = ahora
	return s
}

const (
	formatoFecha = "2006-01-02"
	formatoHora  = "15:04:05"
)

// normalizarHora valida una hora "HH:MM:SS" y la devuelve normalizada.
func normalizarHora(hora string) (string, error) {
	t, err := time.Parse(formatoHora, hora)
	if err != nil {
		return "", malformado("Formato de hora inválido. Use HH:MM:SS")
	}
	return t.Format(formatoHora), nil
}

// interpretarFecha valida una fecha "YYYY-MM-DD".
func interpretarFecha(fecha, campo string) (time.Time, error) {
	t, err := time.Parse(formatoFecha, fecha)
	if err != nil {
		return time.Time{}, malformado("Formato de " + campo + " inválido. Use YYYY-MM-DD")
	}
	return t, nil
}
