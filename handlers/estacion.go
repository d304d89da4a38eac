package handlers

import (
	"encoding/json"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarEstaciones devuelve todas las estaciones.
func ListarEstaciones(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	estaciones, err := s.ListarEstaciones(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, estaciones)
}

// ObtenerEstacion devuelve una estación por id.
func ObtenerEstacion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	estacion, err := s.ObtenerEstacion(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, estacion)
}

// CrearEstacion registra una estación nueva.
func CrearEstacion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.Estacion
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	estacion, err := s.CrearEstacion(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, estacion)
}

// ActualizarEstacion modifica una estación existente.
func ActualizarEstacion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	var dto models.Estacion
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	estacion, err := s.ActualizarEstacion(r.Context(), id, dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, estacion)
}

// EliminarEstacion borra una estación.
func EliminarEstacion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	if err := s.EliminarEstacion(r.Context(), id); err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, map[string]string{"message": "Estación eliminada"})
}
