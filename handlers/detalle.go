package handlers

import (
	"encoding/json"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarDetalles devuelve todas las líneas de revisión.
func ListarDetalles(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	detalles, err := s.ListarDetalles(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, detalles)
}

// ObtenerDetalle devuelve una línea de revisión por id.
func ObtenerDetalle(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	detalle, err := s.ObtenerDetalle(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, detalle)
}

// ListarDetallesPorInspeccion devuelve las líneas de una inspección.
func ListarDetallesPorInspeccion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	detalles, err := s.ListarDetallesPorInspeccion(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, detalles)
}

// CrearDetalle registra una línea de revisión.
func CrearDetalle(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.DetalleCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	detalle, err := s.CrearDetalle(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, detalle)
}

// ActualizarDetalle modifica una línea de revisión.
func ActualizarDetalle(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	var dto models.DetalleCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	detalle, err := s.ActualizarDetalle(r.Context(), id, dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, detalle)
}

// EliminarDetalle borra una línea de revisión.
func EliminarDetalle(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	if err := s.EliminarDetalle(r.Context(), id); err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, map[string]string{"message": "Detalle eliminado"})
}
