// Package migrations aplica el esquema de la base de datos con
// golang-migrate a partir de archivos SQL embebidos.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed files/*.sql
var archivosMigracion embed.FS

func nuevaInstancia(db *sql.DB) (*migrate.Migrate, error) {
	origen, err := iofs.New(archivosMigracion, "files")
	if err != nil {
		return nil, fmt.Errorf("error al leer los archivos de migración: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("error al preparar el driver de migración: %w", err)
	}
	return migrate.NewWithInstance("iofs", origen, "postgres", driver)
}

// Aplicar lleva el esquema a la última versión. No cierra la conexión:
// el que la abrió es responsable de cerrarla.
func Aplicar(db *sql.DB) error {
	m, err := nuevaInstancia(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("error al aplicar migraciones: %w", err)
	}
	return nil
}
