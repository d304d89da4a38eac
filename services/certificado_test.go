package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"revtec/models"
)

var columnasFilaCertificado = []string{"id_certificado", "id_inspeccion", "numero_certificado",
	"fecha_emision", "fecha_vencimiento", "ruta_archivo_digital", "estado_certificado"}

func filaCertificado(id int, estado string, vencimiento time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(columnasFilaCertificado).AddRow(id, 4, "CERT-001",
		relojFijo, vencimiento, "", estado)
}

func TestCrearCertificadoExitoso(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN usuarios").WillReturnRows(filaInspeccion(4, "aprobado"))
	mock.ExpectQuery("FROM certificados WHERE id_inspeccion").WillReturnRows(filaExiste(false))
	mock.ExpectQuery("WHERE numero_certificado").WillReturnRows(filaExiste(false))
	mock.ExpectQuery("INSERT INTO certificados").WillReturnRows(sqlmock.NewRows([]string{"id_certificado"}).AddRow(2))
	mock.ExpectCommit()

	certificado, err := s.CrearCertificado(context.Background(), models.CertificadoCreate{
		IDInspeccion:      4,
		NumeroCertificado: "CERT-001",
		FechaVencimiento:  "2027-03-15",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if certificado.EstadoCertificado != "valido" {
		t.Errorf("estado = %q, se esperaba valido", certificado.EstadoCertificado)
	}
	if !certificado.FechaEmision.Equal(relojFijo) {
		t.Errorf("fecha de emisión = %v, se esperaba el reloj del servicio", certificado.FechaEmision)
	}
	if !certificado.EstaVigente {
		t.Error("un certificado válido con vencimiento futuro debe estar vigente")
	}
	verificarExpectativas(t, mock)
}

func TestCrearCertificadoInspeccionRechazada(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN usuarios").WillReturnRows(filaInspeccion(4, "rechazado"))
	mock.ExpectRollback()

	_, err := s.CrearCertificado(context.Background(), models.CertificadoCreate{
		IDInspeccion:      4,
		NumeroCertificado: "CERT-001",
		FechaVencimiento:  "2027-03-15",
	})
	exigirClase(t, err, Precondicion)
	verificarExpectativas(t, mock)
}

func TestCrearCertificadoDuplicadoPorInspeccion(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN usuarios").WillReturnRows(filaInspeccion(4, "aprobado"))
	mock.ExpectQuery("FROM certificados WHERE id_inspeccion").WillReturnRows(filaExiste(true))
	mock.ExpectRollback()

	_, err := s.CrearCertificado(context.Background(), models.CertificadoCreate{
		IDInspeccion:      4,
		NumeroCertificado: "CERT-002",
		FechaVencimiento:  "2027-03-15",
	})
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

func TestCrearCertificadoNumeroEnUso(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	mock.ExpectBegin()
	mock.ExpectQuery("LEFT JOIN usuarios").WillReturnRows(filaInspeccion(4, "aprobado"))
	mock.ExpectQuery("FROM certificados WHERE id_inspeccion").WillReturnRows(filaExiste(false))
	mock.ExpectQuery("WHERE numero_certificado").WillReturnRows(filaExiste(true))
	mock.ExpectRollback()

	_, err := s.CrearCertificado(context.Background(), models.CertificadoCreate{
		IDInspeccion:      4,
		NumeroCertificado: "CERT-001",
		FechaVencimiento:  "2027-03-15",
	})
	exigirClase(t, err, Conflicto)
	verificarExpectativas(t, mock)
}

// La anulación es de una sola vía: la segunda llamada se rechaza en
// lugar de aceptarse en silencio.
func TestAnularCertificadoDosVeces(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)
	vencimiento := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM certificados WHERE id_certificado").WillReturnRows(filaCertificado(2, "valido", vencimiento))
	mock.ExpectExec("estado_certificado = 'anulado'").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	certificado, err := s.AnularCertificado(context.Background(), 2)
	if err != nil {
		t.Fatalf("primera anulación falló: %v", err)
	}
	if certificado.EstadoCertificado != "anulado" {
		t.Errorf("estado = %q", certificado.EstadoCertificado)
	}
	if certificado.EstaVigente {
		t.Error("un certificado anulado no puede estar vigente")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM certificados WHERE id_certificado").WillReturnRows(filaCertificado(2, "anulado", vencimiento))
	mock.ExpectRollback()

	_, err = s.AnularCertificado(context.Background(), 2)
	exigirClase(t, err, Precondicion)
	verificarExpectativas(t, mock)
}

func TestEstaVigente(t *testing.T) {
	base := models.Certificado{EstadoCertificado: "valido"}

	base.FechaVencimiento = relojFijo.Add(time.Hour)
	if !EstaVigente(base, relojFijo) {
		t.Error("vencimiento futuro debe estar vigente")
	}

	// El límite es estricto: vencer exactamente ahora ya no vale.
	base.FechaVencimiento = relojFijo
	if EstaVigente(base, relojFijo) {
		t.Error("vencimiento igual al instante actual no debe estar vigente")
	}

	base.FechaVencimiento = relojFijo.Add(time.Hour)
	base.EstadoCertificado = "anulado"
	if EstaVigente(base, relojFijo) {
		t.Error("un certificado anulado no debe estar vigente")
	}

	base.EstadoCertificado = "vencido"
	if EstaVigente(base, relojFijo) {
		t.Error("un certificado vencido no debe estar vigente")
	}
}

func TestListarCertificadosVigentes(t *testing.T) {
	s, mock := nuevoServicioDePrueba(t)

	filas := sqlmock.NewRows(columnasFilaCertificado).
		AddRow(1, 4, "CERT-001", relojFijo, relojFijo.AddDate(1, 0, 0), "", "valido")
	mock.ExpectQuery("fecha_vencimiento >").WithArgs(relojFijo).WillReturnRows(filas)

	vigentes, err := s.ListarCertificadosVigentes(context.Background())
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(vigentes) != 1 {
		t.Fatalf("vigentes = %d, se esperaba 1", len(vigentes))
	}
	if !vigentes[0].EstaVigente {
		t.Error("la proyección debe marcar el certificado como vigente")
	}
	verificarExpectativas(t, mock)
}
