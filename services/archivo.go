package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"revtec/models"
)

// Archivador guarda y recupera los archivos digitales de los
// certificados en GridFS.
type Archivador struct {
	bucket *gridfs.Bucket
}

// NuevoArchivador envuelve un bucket de GridFS.
func NuevoArchivador(bucket *gridfs.Bucket) *Archivador {
	return &Archivador{bucket: bucket}
}

// GuardarPDF sube el PDF a GridFS y devuelve el nombre de archivo bajo
// el que quedó guardado. El sufijo aleatorio evita colisiones si un
// certificado se regenera.
func (ar *Archivador) GuardarPDF(numeroCertificado string, datos []byte) (string, error) {
	nombre := fmt.Sprintf("certificado_%s_%s.pdf", numeroCertificado, uuid.New().String())
	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"numero_certificado": numeroCertificado,
		"tipo":               "certificado",
	})
	_, err := ar.bucket.UploadFromStream(nombre, bytes.NewReader(datos), uploadOpts)
	if err != nil {
		return "", fmt.Errorf("error al subir archivo a GridFS: %w", err)
	}
	return nombre, nil
}

// AbrirArchivo abre el flujo de descarga del archivo por su nombre.
func (ar *Archivador) AbrirArchivo(nombre string) (io.ReadCloser, error) {
	stream, err := ar.bucket.OpenDownloadStreamByName(nombre)
	if err != nil {
		return nil, fmt.Errorf("error al abrir archivo %s: %w", nombre, err)
	}
	return stream, nil
}

// GenerarPDFCertificado produce el documento imprimible del
// certificado de revisión.
func GenerarPDFCertificado(c models.Certificado) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Certificado de Revisión Técnica Vehicular")

	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Número de certificado: %s", c.NumeroCertificado))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Inspección: %d", c.IDInspeccion))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Fecha de emisión: %s", fechaCorta(c.FechaEmision)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Fecha de vencimiento: %s", fechaCorta(c.FechaVencimiento)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Estado: %s", c.EstadoCertificado))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error al generar PDF: %w", err)
	}
	return buf.Bytes(), nil
}
