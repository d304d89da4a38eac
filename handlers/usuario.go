package handlers

import (
	"encoding/json"
	"net/http"

	"revtec/models"
	"revtec/services"
)

// ListarUsuarios devuelve los usuarios activos.
func ListarUsuarios(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	usuarios, err := s.ListarUsuarios(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, usuarios)
}

// ObtenerUsuario devuelve un usuario por id.
func ObtenerUsuario(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	usuario, err := s.ObtenerUsuario(r.Context(), id)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, usuario)
}

// CrearUsuario registra un usuario nuevo.
func CrearUsuario(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.UsuarioCreate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	usuario, err := s.CrearUsuario(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusCreated, usuario)
}

// ActualizarUsuario modifica un usuario existente.
func ActualizarUsuario(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	var dto models.UsuarioUpdate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	usuario, err := s.ActualizarUsuario(r.Context(), id, dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, usuario)
}

// EliminarUsuario borra o desactiva un usuario según sus dependencias.
func EliminarUsuario(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	id, err := idDeRuta(r)
	if err != nil {
		responderIDInvalido(w)
		return
	}
	if err := s.EliminarUsuario(r.Context(), id); err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, map[string]string{"message": "Usuario eliminado"})
}

// Login valida credenciales y devuelve el usuario autenticado.
func Login(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	var dto models.UsuarioLogin
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		responderCuerpoInvalido(w, err)
		return
	}
	usuario, err := s.Login(r.Context(), dto)
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, usuario)
}

// Salud comprueba la conexión con la base de datos.
func Salud(w http.ResponseWriter, r *http.Request, s *services.Servicio) {
	estado, err := s.Salud(r.Context())
	if err != nil {
		responderError(w, err)
		return
	}
	responderJSON(w, http.StatusOK, estado)
}
