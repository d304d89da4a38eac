package migrations

import (
	"strings"
	"testing"
)

// Cada migración debe venir en pareja up/down y ninguna puede estar
// vacía; una migración a medias dejaría el esquema irrecuperable.
func TestArchivosDeMigracionEmparejados(t *testing.T) {
	entradas, err := archivosMigracion.ReadDir("files")
	if err != nil {
		t.Fatalf("no se pudieron leer los archivos embebidos: %v", err)
	}
	if len(entradas) == 0 {
		t.Fatal("no hay migraciones embebidas")
	}

	nombres := make(map[string]bool, len(entradas))
	for _, entrada := range entradas {
		nombres[entrada.Name()] = true

		datos, err := archivosMigracion.ReadFile("files/" + entrada.Name())
		if err != nil {
			t.Fatalf("no se pudo leer %s: %v", entrada.Name(), err)
		}
		if len(strings.TrimSpace(string(datos))) == 0 {
			t.Errorf("la migración %s está vacía", entrada.Name())
		}
	}

	for nombre := range nombres {
		var pareja string
		switch {
		case strings.HasSuffix(nombre, ".up.sql"):
			pareja = strings.TrimSuffix(nombre, ".up.sql") + ".down.sql"
		case strings.HasSuffix(nombre, ".down.sql"):
			pareja = strings.TrimSuffix(nombre, ".down.sql") + ".up.sql"
		default:
			t.Errorf("nombre de migración inesperado: %s", nombre)
			continue
		}
		if !nombres[pareja] {
			t.Errorf("la migración %s no tiene pareja %s", nombre, pareja)
		}
	}
}

func TestEsquemaInicialCreaTodasLasTablas(t *testing.T) {
	datos, err := archivosMigracion.ReadFile("files/0001_esquema_inicial.up.sql")
	if err != nil {
		t.Fatalf("no se pudo leer el esquema inicial: %v", err)
	}
	esquema := string(datos)

	for _, tabla := range []string{"usuarios", "estaciones", "vehiculos", "citas",
		"inspecciones", "detalle_inspecciones", "certificados"} {
		if !strings.Contains(esquema, "CREATE TABLE "+tabla) {
			t.Errorf("el esquema inicial no crea la tabla %s", tabla)
		}
	}
}
