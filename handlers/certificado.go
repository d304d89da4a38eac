package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarCertificados devuelve todos los certificados proyectados.
func ListarCertificados(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	certificados, err := s.ListarCertificados(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, certificados)
}

// ListarCertificadosVigentes devuelve los certificados válidos con
// vencimiento futuro.
func ListarCertificadosVigentes(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	certificados, err := s.ListarCertificadosVigentes(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, certificados)
}

// ObtenerCertificado devuelve un certificado por id.
func ObtenerCertificado(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	certificado, err := s.ObtenerCertificado(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, certificado)
}

// CrearCertificado emite un certificado para una inspección aprobada.
func CrearCertificado(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.CertificadoCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	certificado, err := s.CrearCertificado(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, certificado)
}

// AnularCertificado pasa el certificado a estado anulado. El DELETE de
// certificados usa este mismo handler porque un certificado emitido
// nunca se borra.
func AnularCertificado(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	certificado, err := s.AnularCertificado(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, certificado)
}

// DescargarArchivoCertificado transmite el PDF archivado del
// certificado.
func DescargarArchivoCertificado(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	lector, err := s.AbrirArchivoCertificado(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	defer lector.Close()

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := io.Copy(w, lector); err != nil {
		log.Printf("Error al transmitir el archivo del certificado %d: %v", id, err)
	}
}
