package services

import (
	"bytes"
	"testing"
	"time"

	"revtec/models"
)

func TestGenerarPDFCertificado(t *testing.T) {
	datos, err := GenerarPDFCertificado(models.Certificado{
		IDCertificado:     2,
		IDInspeccion:      4,
		NumeroCertificado: "CERT-001",
		FechaEmision:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		FechaVencimiento:  time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
		EstadoCertificado: "valido",
	})
	if err != nil {
		t.Fatalf("error al generar el PDF: %v", err)
	}
	if !bytes.HasPrefix(datos, []byte("%PDF")) {
		t.Error("el documento generado no es un PDF")
	}
}
