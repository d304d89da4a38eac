package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Notificador envía correos de confirmación de citas.
type Notificador struct {
	servidor string
	puerto   int
	correo   string
	password string
}

// NuevoNotificadorDesdeEntorno lee la configuración SMTP de las
// variables de entorno. Devuelve nil si no hay servidor configurado,
// en cuyo caso el servicio opera sin notificaciones.
func NuevoNotificadorDesdeEntorno() *Notificador {
	servidor := os.Getenv("SMTP_SERVER")
	if servidor == "" {
		return nil
	}
	puerto, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		puerto = 587
	}
	return &Notificador{
		servidor: servidor,
		puerto:   puerto,
		correo:   os.Getenv("SMTP_EMAIL"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

// EnviarConfirmacionCita notifica al propietario del vehículo que su
// cita quedó programada.
func (n *Notificador) EnviarConfirmacionCita(destinatario, estacion, fecha, hora string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.correo)
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", "Confirmación de cita de revisión técnica")
	cuerpo := fmt.Sprintf(
		"Su cita quedó programada.\n\nEstación: %s\nFecha: %s\nHora: %s\n",
		estacion, fecha, hora)
	m.SetBody("text/plain", cuerpo)

	d := gomail.NewDialer(n.servidor, n.puerto, n.correo, n.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar el correo: %v", err)
	}
	return nil
}
