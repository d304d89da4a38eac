package services

import (
	"context"
	"io"
	"log"
	"time"

	"revtec/models"
	"revtec/store"
)

// CrearCertificado emite un certificado para una inspección aprobada.
// Comprobaciones, en orden: la inspección existe, su resultado es
// aprobado, no tiene ya un certificado, y el número propuesto no está
// en uso. Tras confirmar la transacción se genera el archivo digital;
// si esa parte falla, el certificado queda emitido sin archivo.
func (s *Servicio) CrearCertificado(ctx context.Context, dto models.CertificadoCreate) (models.CertificadoResponse, error) {
	vencimiento, err := interpretarFecha(dto.FechaVencimiento, "fecha de vencimiento")
	if err != nil {
		return models.CertificadoResponse{}, err
	}
	emision := s.ahora()
	if dto.FechaEmision != "" {
		emision, err = interpretarFecha(dto.FechaEmision, "fecha de emisión")
		if err != nil {
			return models.CertificadoResponse{}, err
		}
	}
	estado := dto.EstadoCertificado
	if estado == "" {
		estado = "valido"
	}

	var creado models.Certificado
	err = s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		inspeccion, err := a.ObtenerInspeccion(ctx, dto.IDInspeccion)
		if err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("La inspección especificada no existe")
			}
			return err
		}
		if inspeccion.Resultado != "aprobado" {
			return precondicion("Solo se emiten certificados para inspecciones aprobadas")
		}

		existe, err := a.ExisteCertificadoPorInspeccion(ctx, dto.IDInspeccion)
		if err != nil {
			return err
		}
		if existe {
			return conflicto("La inspección ya tiene un certificado emitido")
		}

		enUso, err := a.ExisteNumeroCertificado(ctx, dto.NumeroCertificado)
		if err != nil {
			return err
		}
		if enUso {
			return conflicto("El número de certificado ya está en uso")
		}

		creado = models.Certificado{
			IDInspeccion:       dto.IDInspeccion,
			NumeroCertificado:  dto.NumeroCertificado,
			FechaEmision:       emision,
			FechaVencimiento:   vencimiento,
			RutaArchivoDigital: dto.RutaArchivoDigital,
			EstadoCertificado:  estado,
		}
		id, err := a.InsertarCertificado(ctx, creado)
		if err != nil {
			return err
		}
		creado.IDCertificado = id
		return nil
	})
	if err != nil {
		return models.CertificadoResponse{}, envolverInterno(err)
	}

	s.archivarCertificado(ctx, &creado)
	return proyectarCertificado(creado, s.ahora()), nil
}

// AnularCertificado pasa el certificado de valido a anulado. La
// transición es de una sola vía: anular dos veces se rechaza, no se
// acepta en silencio.
func (s *Servicio) AnularCertificado(ctx context.Context, id int) (models.CertificadoResponse, error) {
	var anulado models.Certificado
	err := s.almacen.Transaccion(ctx, func(a *store.Almacen) error {
		certificado, err := a.ObtenerCertificado(ctx, id)
		if err != nil {
			if store.EsNoEncontrado(err) {
				return noEncontrado("Certificado no encontrado")
			}
			return err
		}
		if certificado.EstadoCertificado == "anulado" {
			return precondicion("El certificado ya está anulado")
		}
		if err := a.AnularCertificado(ctx, id); err != nil {
			return err
		}
		certificado.EstadoCertificado = "anulado"
		anulado = certificado
		return nil
	})
	if err != nil {
		return models.CertificadoResponse{}, envolverInterno(err)
	}
	return proyectarCertificado(anulado, s.ahora()), nil
}

// ObtenerCertificado devuelve la proyección de un certificado.
func (s *Servicio) ObtenerCertificado(ctx context.Context, id int) (models.CertificadoResponse, error) {
	certificado, err := s.almacen.ObtenerCertificado(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return models.CertificadoResponse{}, noEncontrado("Certificado no encontrado")
		}
		return models.CertificadoResponse{}, interno(err)
	}
	return proyectarCertificado(certificado, s.ahora()), nil
}

// ListarCertificados devuelve todos los certificados proyectados.
func (s *Servicio) ListarCertificados(ctx context.Context) ([]models.CertificadoResponse, error) {
	certificados, err := s.almacen.ListarCertificados(ctx)
	if err != nil {
		return nil, interno(err)
	}
	return s.proyectarCertificados(certificados), nil
}

// ListarCertificadosVigentes devuelve los certificados válidos con
// vencimiento estrictamente futuro.
func (s *Servicio) ListarCertificadosVigentes(ctx context.Context) ([]models.CertificadoResponse, error) {
	certificados, err := s.almacen.ListarCertificadosVigentes(ctx, s.ahora())
	if err != nil {
		return nil, interno(err)
	}
	return s.proyectarCertificados(certificados), nil
}

func (s *Servicio) proyectarCertificados(certificados []models.Certificado) []models.CertificadoResponse {
	ahora := s.ahora()
	respuesta := make([]models.CertificadoResponse, 0, len(certificados))
	for _, c := range certificados {
		respuesta = append(respuesta, proyectarCertificado(c, ahora))
	}
	return respuesta
}

// AbrirArchivoCertificado abre el PDF archivado del certificado.
func (s *Servicio) AbrirArchivoCertificado(ctx context.Context, id int) (io.ReadCloser, error) {
	certificado, err := s.almacen.ObtenerCertificado(ctx, id)
	if err != nil {
		if store.EsNoEncontrado(err) {
			return nil, noEncontrado("Certificado no encontrado")
		}
		return nil, interno(err)
	}
	if s.archivador == nil || certificado.RutaArchivoDigital == "" {
		return nil, noEncontrado("El certificado no tiene archivo digital")
	}
	lector, err := s.archivador.AbrirArchivo(certificado.RutaArchivoDigital)
	if err != nil {
		return nil, interno(err)
	}
	return lector, nil
}

// archivarCertificado genera el PDF del certificado y lo guarda en el
// archivo digital. Mejor esfuerzo: el certificado ya está emitido y un
// fallo aquí solo se registra.
func (s *Servicio) archivarCertificado(ctx context.Context, certificado *models.Certificado) {
	if s.archivador == nil {
		return
	}
	datos, err := GenerarPDFCertificado(*certificado)
	if err != nil {
		log.Printf("No se pudo generar el PDF del certificado %d: %v", certificado.IDCertificado, err)
		return
	}
	ruta, err := s.archivador.GuardarPDF(certificado.NumeroCertificado, datos)
	if err != nil {
		log.Printf("No se pudo archivar el PDF del certificado %d: %v", certificado.IDCertificado, err)
		return
	}
	if err := s.almacen.ActualizarRutaArchivo(ctx, certificado.IDCertificado, ruta); err != nil {
		log.Printf("No se pudo registrar la ruta del archivo del certificado %d: %v", certificado.IDCertificado, err)
		return
	}
	certificado.RutaArchivoDigital = ruta
}

// fechaCorta formatea una fecha para el cuerpo del PDF.
func fechaCorta(t time.Time) string {
	return t.Format(formatoFecha)
}
