package handlers

import (
	"encoding/json"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarVehiculos devuelve todos los vehículos.
func ListarVehiculos(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	vehiculos, err := s.ListarVehiculos(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, vehiculos)
}

// ObtenerVehiculo devuelve un vehículo por id.
func ObtenerVehiculo(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	vehiculo, err := s.ObtenerVehiculo(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, vehiculo)
}

// ListarVehiculosPorPropietario devuelve los vehículos de un usuario.
func ListarVehiculosPorPropietario(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	vehiculos, err := s.ListarVehiculosPorPropietario(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, vehiculos)
}

// CrearVehiculo registra un vehículo nuevo.
func CrearVehiculo(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.VehiculoCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	vehiculo, err := s.CrearVehiculo(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, vehiculo)
}

// ActualizarVehiculo modifica un vehículo existente.
func ActualizarVehiculo(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	var dto models.VehiculoCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	vehiculo, err := s.ActualizarVehiculo(r.Context(), id, dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, vehiculo)
}

// EliminarVehiculo borra un vehículo sin citas asociadas.
func EliminarVehiculo(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	if err := s.EliminarVehiculo(r.Context(), id); err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, map[string]string{"message": "Vehículo eliminado"})
}
