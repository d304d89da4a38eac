package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"revtec/services"
)

func TestResponderErrorMapeaClases(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
	}{
		{"no encontrado", &services.ErrorValidacion{Clase: services.NoEncontrado, Mensaje: "no existe"}, 404},
		{"conflicto", &services.ErrorValidacion{Clase: services.Conflicto, Mensaje: "ocupado"}, 409},
		{"precondición", &services.ErrorValidacion{Clase: services.Precondicion, Mensaje: "estado inválido"}, 400},
		{"malformado", &services.ErrorValidacion{Clase: services.Malformado, Mensaje: "hora inválida"}, 400},
		{"interno", &services.ErrorValidacion{Clase: services.Interno, Mensaje: "Error interno del servidor"}, 500},
		{"credenciales", services.ErrCredencialesInvalidas, 401},
		{"desconocido", errors.New("algo raro"), 500},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			w := httptest.NewRecorder()
			responderError(w, caso.err)

			if w.Code != caso.status {
				t.Errorf("status = %d, se esperaba %d", w.Code, caso.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			var cuerpo map[string]string
			if err := json.NewDecoder(w.Body).Decode(&cuerpo); err != nil {
				t.Fatalf("cuerpo no es JSON: %v", err)
			}
			if cuerpo["error"] == "" {
				t.Error("el cuerpo debe llevar el campo error")
			}
		})
	}
}

func TestResponderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	responderJSON(w, 201, map[string]int{"id": 7})

	if w.Code != 201 {
		t.Errorf("status = %d", w.Code)
	}
	var cuerpo map[string]int
	if err := json.NewDecoder(w.Body).Decode(&cuerpo); err != nil {
		t.Fatalf("cuerpo no es JSON: %v", err)
	}
	if cuerpo["id"] != 7 {
		t.Errorf("id = %d", cuerpo["id"])
	}
}
