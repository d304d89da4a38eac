package handlers

import (
	"encoding/json"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarCitas devuelve todas las citas proyectadas.
func ListarCitas(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	citas, err := s.ListarCitas(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, citas)
}

// ObtenerCita devuelve una cita por id.
func ObtenerCita(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	cita, err := s.ObtenerCita(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, cita)
}

// ListarCitasPorVehiculo devuelve las citas de un vehículo, las más
// recientes primero.
func ListarCitasPorVehiculo(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	citas, err := s.ListarCitasPorVehiculo(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, citas)
}

// ListarCitasPorEstacion devuelve las citas de una estación, acotadas
// por ?fecha=AAAA-MM-DD si se indica.
func ListarCitasPorEstacion(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	citas, err := s.ListarCitasPorEstacion(r.Context(), id, r.URL.Query().Get("fecha"))
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, citas)
}

// CrearCita programa una cita nueva.
func CrearCita(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.CitaCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	cita, err := s.CrearCita(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, cita)
}

// ActualizarCita modifica una cita existente.
func ActualizarCita(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	var dto models.CitaUpdate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	cita, err := s.ActualizarCita(r.Context(), id, dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, cita)
}

// EliminarCita cancela o borra una cita según tenga inspecciones.
func EliminarCita(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	if err := s.EliminarCita(r.Context(), id); err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, map[string]string{"message": "Cita eliminada"})
}
