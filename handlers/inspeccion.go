package handlers

import (
	"encoding/json"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarInspecciones devuelve todas las inspecciones proyectadas.
func ListarInspecciones(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	inspecciones, err := s.ListarInspecciones(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, inspecciones)
}

// ObtenerInspeccion devuelve una inspección por id.
func ObtenerInspeccion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	inspeccion, err := s.ObtenerInspeccion(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, inspeccion)
}

// CrearInspeccion registra la inspección de una cita programada.
func CrearInspeccion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.InspeccionCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	inspeccion, err := s.CrearInspeccion(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, inspeccion)
}

// ActualizarInspeccion modifica una inspección existente.
func ActualizarInspeccion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	var dto models.InspeccionUpdate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	inspeccion, err := s.ActualizarInspeccion(r.Context(), id, dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, inspeccion)
}

// EliminarInspeccion borra una inspección sin certificados.
func EliminarInspeccion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	if err := s.EliminarInspeccion(r.Context(), id); err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, map[string]string{"message": "Inspección eliminada"})
}
