// Package store contiene el acceso a PostgreSQL. Todas las consultas
// reciben el contexto de la solicitud y usan parámetros posicionales.
package store

import (
	"context"
	"database/sql"
	"log"
)

// ejecutor abstrae *sql.DB y *sql.Tx para que las mismas consultas
// puedan correr dentro o fuera de una transacción.
type ejecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Almacen es el repositorio del sistema. Se inyecta en los servicios;
// no hay estado global.
type Almacen struct {
	db *sql.DB
	ej ejecutor
}

// NuevoAlmacen crea un Almacen sobre la conexión dada.
func NuevoAlmacen(db *sql.DB) *Almacen {
	return &Almacen{db: db, ej: db}
}

// Transaccion ejecuta fn dentro de una transacción. Si fn devuelve un
// error se revierten todos los cambios; no hay escrituras parciales.
func (a *Almacen) Transaccion(ctx context.Context, fn func(*Almacen) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&Almacen{db: a.db, ej: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("Error al revertir la transacción: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}
