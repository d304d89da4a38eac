// Package handlers expone el servicio de revisión técnica como una API
// REST con gorilla/mux. Cada handler decodifica la solicitud, delega en
// el servicio y traduce el rechazo a un código HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"revtec/services"
)

func responderJSON(w http.ResponseWriter, status int, cuerpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if cuerpo == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(cuerpo); err != nil {
		log.Printf("Error al codificar la respuesta JSON: %v", err)
	}
}

// responderError traduce el error del servicio a estado HTTP y cuerpo
// {"error": mensaje}.
func responderError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrCredencialesInvalidas) {
		responderJSON(w, http.StatusUnauthorized, map[string]string{"error": "Correo o contraseña incorrectos"})
		return
	}
	status := http.StatusInternalServerError
	if clase, ok := services.Clasificar(err); ok {
		switch clase {
		case services.NoEncontrado:
			status = http.StatusNotFound
		case services.Conflicto:
			status = http.StatusConflict
		case services.Precondicion, services.Malformado:
			status = http.StatusBadRequest
		}
	} else {
		log.Printf("Error no clasificado: %v", err)
	}
	responderJSON(w, status, map[string]string{"error": err.Error()})
}

func responderCuerpoInvalido(w http.ResponseWriter, err error) {
	log.Printf("Error al decodificar los datos: %v", err)
	responderJSON(w, http.StatusBadRequest, map[string]string{"error": "Error al decodificar los datos"})
}

// idDeRuta extrae el parámetro {id} numérico de la ruta.
func idDeRuta(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func responderIDInvalido(w http.ResponseWriter) {
	responderJSON(w, http.StatusBadRequest, map[string]string{"error": "El identificador debe ser numérico"})
}
